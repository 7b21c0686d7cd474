// Package roadmap_test verifies map loading, the hill-road rule, plan
// constraints (avoided kinds, traffic), and scenario configs.
package roadmap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialath/vialath/core"
	"github.com/vialath/vialath/dijkstra"
	"github.com/vialath/vialath/roadmap"
)

// testMap is a small network with one road of each kind:
//
//	N0──highway(10)──N1──local(4)──N2──hill(7 up / 3.5 down)──N3
//	 └───────────────toll(30)──────────────────────────────────┘
const testMap = `# sample network
N0 N1 10 highway 2
N1 N2 4 local 3
N2 N3 7 hill 2
N0 N3 30 toll 1
`

func loadTestMap(t *testing.T) *roadmap.RoadMap {
	t.Helper()
	rm, err := roadmap.Load(strings.NewReader(testMap))
	require.NoError(t, err)

	return rm
}

func TestLoad_CountsAndMirroring(t *testing.T) {
	rm := loadTestMap(t)

	// Each map line yields two directed roads.
	assert.Equal(t, 4, rm.LocationCount())
	assert.Equal(t, 8, rm.RoadCount())
	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, rm.Locations())

	// Non-hill roads mirror at the listed time.
	w, err := rm.Graph().EdgeWeight("N1", "N0")
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)
}

func TestLoad_HillDownhillHalvesTime(t *testing.T) {
	rm := loadTestMap(t)

	up, err := rm.Graph().EdgeWeight("N2", "N3")
	require.NoError(t, err)
	assert.Equal(t, 7.0, up)

	down, err := rm.Graph().EdgeWeight("N3", "N2")
	require.NoError(t, err)
	assert.Equal(t, 3.5, down)
}

func TestLoad_BadLine(t *testing.T) {
	_, err := roadmap.Load(strings.NewReader("N0 N1 ten highway 1\n"))
	assert.ErrorIs(t, err, roadmap.ErrBadRoadLine)
	assert.Contains(t, err.Error(), "line 1")

	_, err = roadmap.Load(strings.NewReader("N0 N1 10 highway\n"))
	assert.ErrorIs(t, err, roadmap.ErrBadRoadLine)
}

func TestAddRoad_Validation(t *testing.T) {
	rm := roadmap.New()

	err := rm.AddRoad(roadmap.Road{From: "A", To: "B", Time: 5, Kind: roadmap.KindLocal, Multiplier: 0.5})
	assert.ErrorIs(t, err, roadmap.ErrBadMultiplier)

	err = rm.AddRoad(roadmap.Road{From: "A", To: "B", Time: -5, Kind: roadmap.KindLocal, Multiplier: 1})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	// Failed inserts leave the map empty.
	assert.Equal(t, 0, rm.RoadCount())
}

func TestPlan_FreeFlowingTraffic(t *testing.T) {
	rm := loadTestMap(t)

	// Chain 10+4+7=21 beats the direct toll road at 30.
	route, err := rm.Plan("N0", "N3")
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3"}, route.Path)
	assert.Equal(t, 21.0, route.Time)
}

func TestPlan_DownhillReturnTrip(t *testing.T) {
	rm := loadTestMap(t)

	// Return trip rides the hill downhill: 3.5+4+10=17.5 < 30.
	route, err := rm.Plan("N3", "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N3", "N2", "N1", "N0"}, route.Path)
	assert.Equal(t, 17.5, route.Time)
}

func TestPlan_AvoidRestrictedKinds(t *testing.T) {
	rm := loadTestMap(t)

	// Without local roads the chain is broken; only the toll road remains.
	route, err := rm.Plan("N0", "N3", roadmap.Avoid(roadmap.KindLocal))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N3"}, route.Path)
	assert.Equal(t, 30.0, route.Time)
}

func TestPlan_WithTraffic(t *testing.T) {
	rm := loadTestMap(t)

	// Under traffic the chain costs 10*2+4*3+7*2=46; the toll road stays 30.
	route, err := rm.Plan("N0", "N3", roadmap.WithTraffic())
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N3"}, route.Path)
	assert.Equal(t, 30.0, route.Time)
}

func TestPlan_NoAdmissibleRoute(t *testing.T) {
	rm := loadTestMap(t)

	_, err := rm.Plan("N0", "N3", roadmap.Avoid(roadmap.KindLocal, roadmap.KindToll))
	assert.ErrorIs(t, err, roadmap.ErrNoRoute)
	// ErrNoRoute wraps the algorithm-level sentinel.
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestPlan_StartEqualsEnd(t *testing.T) {
	rm := loadTestMap(t)

	route, err := rm.Plan("N1", "N1")
	require.NoError(t, err)
	assert.Equal(t, []string{"N1"}, route.Path)
	assert.Equal(t, 0.0, route.Time)
}

func TestPlan_UnknownEndpoints(t *testing.T) {
	rm := loadTestMap(t)

	_, err := rm.Plan("Z", "N3")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = rm.Plan("N0", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMultiplier_DefaultsToOne(t *testing.T) {
	rm := loadTestMap(t)

	assert.Equal(t, 2.0, rm.Multiplier("N0", "N1"))
	assert.Equal(t, 1.0, rm.Multiplier("N0", "N2"))
}

func TestParsePlanConfig(t *testing.T) {
	cfg, err := roadmap.ParsePlanConfig([]byte(
		"source: N0\ndestination: N3\navoid: [toll, hill]\ntraffic: true\n",
	))
	require.NoError(t, err)
	assert.Equal(t, "N0", cfg.Source)
	assert.Equal(t, "N3", cfg.Destination)
	assert.Equal(t, []string{"toll", "hill"}, cfg.Avoid)
	assert.True(t, cfg.Traffic)
}

func TestParsePlanConfig_MissingEndpoints(t *testing.T) {
	_, err := roadmap.ParsePlanConfig([]byte("destination: N3\n"))
	assert.ErrorIs(t, err, roadmap.ErrBadPlanConfig)

	_, err = roadmap.ParsePlanConfig([]byte("source: N0\n"))
	assert.ErrorIs(t, err, roadmap.ErrBadPlanConfig)
}

func TestParsePlanConfig_BadYAML(t *testing.T) {
	_, err := roadmap.ParsePlanConfig([]byte("source: [unclosed\n"))
	assert.Error(t, err)
}

func TestPlanScenario_FromFile(t *testing.T) {
	rm := loadTestMap(t)

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"source: N0\ndestination: N3\navoid: [local]\n",
	), 0o644))

	cfg, err := roadmap.LoadPlanConfig(path)
	require.NoError(t, err)

	route, err := rm.PlanScenario(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N3"}, route.Path)
	assert.Equal(t, 30.0, route.Time)
}
