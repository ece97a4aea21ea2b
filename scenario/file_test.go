package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/scenario"
)

const chainYAML = `
events:
  - X0
episodes:
  - name: L
    start: L.Start
    end: L.End
    duration: [30, 40]
  - name: S
    start: S.Start
    end: S.End
    duration: [40, 50]
constraints:
  - from: X0
    to: L.Start
    interval: [10, 20]
  - from: X0
    to: S.End
    interval: [60, 70]
  - from: S.Start
    to: L.End
    interval: [10, 20]
`

func TestLoad_ParsesEVAsScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chainYAML), 0o644))

	s, names, err := scenario.Load(path)
	require.NoError(t, err)

	x0, ok := names["X0"]
	require.True(t, ok)
	lEnd, ok := names["L.End"]
	require.True(t, ok)

	d, err := s.EventDistance(x0, lEnd)
	require.NoError(t, err)
	assert.Equal(t, 50.0, d)
}

func TestBuild_RejectsUnknownConstraintEndpoint(t *testing.T) {
	doc := scenario.Doc{
		Events: []string{"A"},
		Links: []scenario.ConstraintDoc{
			{From: "A", To: "B", Interval: [2]float64{0, 1}},
		},
	}
	_, _, err := scenario.Build(doc)
	assert.Error(t, err)
}

func TestBuild_AppliesCommits(t *testing.T) {
	doc := scenario.Doc{
		Events: []string{"A"},
		Commits: []scenario.CommitDoc{
			{Event: "A", At: 5},
		},
	}
	s, names, err := scenario.Build(doc)
	require.NoError(t, err)

	got, ok := s.Committed(names["A"])
	require.True(t, ok)
	assert.Equal(t, 5.0, got)
}
