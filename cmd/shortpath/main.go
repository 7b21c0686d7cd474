// Command shortpath loads a weighted directed graph or a road map and
// answers shortest-path queries from the command line.
//
// Usage:
//
//	shortpath -graph edges.txt -source A [-dest C]
//	shortpath -map roads.txt -source N0 -dest N3 [-avoid toll,local] [-traffic]
//	shortpath -map roads.txt -plan trip.yaml
//
// Graph files hold one edge per line as "from,to,weight". Road map files
// use the roadmap format ("src dst time kind multiplier"). With -dest the
// tool prints the reconstructed path and its total distance; without it,
// the full distance table from the source.
//
// Exit codes: 0 on success, 1 on usage or input errors, 2 when the query
// fails (unknown node or unreachable destination).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vialath/vialath/core"
	"github.com/vialath/vialath/dijkstra"
	"github.com/vialath/vialath/roadmap"
)

const (
	exitOK     = 0
	exitUsage  = 1
	exitDomain = 2
)

// main is a thin boundary: all logic lives in run, which is deterministic
// for fixed inputs and writes only to the provided streams.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		graphFile = fs.String("graph", "", "graph file of from,to,weight lines")
		mapFile   = fs.String("map", "", "road map file (src dst time kind multiplier)")
		planFile  = fs.String("plan", "", "YAML plan scenario (requires -map)")
		source    = fs.String("source", "", "source node")
		dest      = fs.String("dest", "", "destination node; omit for the full distance table")
		avoid     = fs.String("avoid", "", "comma-separated road kinds to avoid (requires -map)")
		traffic   = fs.Bool("traffic", false, "apply traffic multipliers (requires -map)")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var err error
	switch {
	case *graphFile != "" && *mapFile != "":
		err = errors.New("-graph and -map are mutually exclusive")
	case *graphFile != "":
		if *source == "" {
			err = errors.New("-graph requires -source")
			break
		}
		err = runGraph(stdout, *graphFile, *source, *dest)
	case *mapFile != "":
		err = runMap(stdout, *mapFile, *planFile, *source, *dest, *avoid, *traffic)
	default:
		err = errors.New("one of -graph or -map is required")
	}

	if err != nil {
		fmt.Fprintln(stderr, "shortpath:", err)
		if errors.Is(err, core.ErrVertexNotFound) ||
			errors.Is(err, dijkstra.ErrVertexNotFound) ||
			errors.Is(err, dijkstra.ErrUnreachable) {
			return exitDomain
		}

		return exitUsage
	}

	return exitOK
}

// runGraph answers a query over a plain from,to,weight edge list.
func runGraph(stdout io.Writer, file, source, dest string) error {
	g, err := loadEdgeList(file)
	if err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
	if err != nil {
		return err
	}

	if dest == "" {
		printTable(stdout, res)

		return nil
	}

	path, total, err := res.PathTo(dest)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "path: %s\ndistance: %g\n", strings.Join(path, " -> "), total)

	return nil
}

// runMap answers a query over a road map, either from flags or from a
// declarative YAML scenario.
func runMap(stdout io.Writer, file, planFile, source, dest, avoid string, traffic bool) error {
	rm, err := roadmap.LoadFile(file)
	if err != nil {
		return err
	}

	var opts []roadmap.PlanOption
	if planFile != "" {
		cfg, cfgErr := roadmap.LoadPlanConfig(planFile)
		if cfgErr != nil {
			return cfgErr
		}
		source, dest = cfg.Source, cfg.Destination
		opts = cfg.Options()
	} else {
		if source == "" {
			return errors.New("-map requires -source or -plan")
		}
		if avoid != "" {
			opts = append(opts, roadmap.Avoid(strings.Split(avoid, ",")...))
		}
		if traffic {
			opts = append(opts, roadmap.WithTraffic())
		}
	}

	if dest == "" {
		res, dErr := rm.Distances(source, opts...)
		if dErr != nil {
			return dErr
		}
		printTable(stdout, res)

		return nil
	}

	route, err := rm.Plan(source, dest, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "route: %s\ntravel time: %g\n", strings.Join(route.Path, " -> "), route.Time)

	return nil
}

// loadEdgeList parses one "from,to,weight" edge per line into a core.Graph.
// Blank lines and '#' comments are skipped.
func loadEdgeList(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	g := core.NewGraph()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("graph file line %d: want from,to,weight, got %q", lineNo, line)
		}
		w, wErr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if wErr != nil {
			return nil, fmt.Errorf("graph file line %d: weight %q: %v", lineNo, parts[2], wErr)
		}
		from := strings.TrimSpace(parts[0])
		to := strings.TrimSpace(parts[1])
		if err = g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("graph file line %d: %w", lineNo, err)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	return g, nil
}

// printTable writes the full distance table, sorted by node ID.
func printTable(w io.Writer, res *dijkstra.Result) {
	for _, id := range res.Reached() {
		fmt.Fprintf(w, "%s\t%g\n", id, res.Dist[id])
	}
}
