// Package roadmap: map file parsing.
package roadmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// downhillFactor halves the listed (uphill) time for the reverse direction
// of hill roads.
const downhillFactor = 0.5

// Load parses the road map format from r and constructs a RoadMap.
//
// Each non-empty, non-comment line must hold five space-separated fields:
//
//	source destination travelTime kind trafficMultiplier
//
// Every entry yields two directed roads. Hill roads get half the listed
// time in the reverse (downhill) direction; all other kinds mirror at the
// listed time. Malformed lines fail with ErrBadRoadLine wrapped with the
// 1-based line number.
func Load(r io.Reader) (*RoadMap, error) {
	rm := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fwd, rev, err := parseRoadLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRoadLine, lineNo, err)
		}
		if err = rm.AddRoad(fwd); err != nil {
			return nil, fmt.Errorf("roadmap: line %d: %w", lineNo, err)
		}
		if err = rm.AddRoad(rev); err != nil {
			return nil, fmt.Errorf("roadmap: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("roadmap: read map: %w", err)
	}

	return rm, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*RoadMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open map file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// parseRoadLine splits one map entry into its forward and reverse roads.
func parseRoadLine(line string) (fwd, rev Road, err error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Road{}, Road{}, fmt.Errorf("want 5 fields, got %d", len(fields))
	}

	travelTime, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Road{}, Road{}, fmt.Errorf("travel time %q: %v", fields[2], err)
	}
	multiplier, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Road{}, Road{}, fmt.Errorf("traffic multiplier %q: %v", fields[4], err)
	}

	kind := fields[3]
	fwd = Road{From: fields[0], To: fields[1], Time: travelTime, Kind: kind, Multiplier: multiplier}
	rev = Road{From: fields[1], To: fields[0], Time: travelTime, Kind: kind, Multiplier: multiplier}
	// Hill roads are uphill source→destination; downhill takes half as long.
	if kind == KindHill {
		rev.Time = travelTime * downhillFactor
	}

	return fwd, rev, nil
}
