package solver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boggle/grid"
	"github.com/katalvlaran/boggle/solver"
	"github.com/katalvlaran/boggle/trie"
)

// abaBoard is a 1×3 board on which "ab" and "ba" are each spelled twice.
func abaBoard(t *testing.T) (*grid.Grid, *trie.Dictionary) {
	t.Helper()
	g, err := grid.New(1, 3, []string{"a", "b", "a"})
	require.NoError(t, err)

	return g, trie.Build([]string{"ab", "ba"})
}

func TestSolve_NilInputs(t *testing.T) {
	g, d := abaBoard(t)

	_, err := solver.Solve(context.Background(), nil, d)
	assert.ErrorIs(t, err, solver.ErrGridNil)

	_, err = solver.Solve(context.Background(), g, nil)
	assert.ErrorIs(t, err, solver.ErrDictionaryNil)
}

func TestSolve_AllPaths(t *testing.T) {
	g, d := abaBoard(t)

	res, err := solver.Solve(context.Background(), g, d)
	require.NoError(t, err)

	assert.Equal(t, []string{"ab", "ba", "ba", "ab"}, res.Words)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}, res.Paths)
	assert.Equal(t, 4, res.Yields)
	assert.False(t, res.Truncated)
}

func TestSolve_Unique(t *testing.T) {
	g, d := abaBoard(t)

	res, err := solver.Solve(context.Background(), g, d, solver.WithUnique(true))
	require.NoError(t, err)

	assert.Equal(t, []string{"ab", "ba"}, res.Words)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, res.Paths)
	assert.Equal(t, 4, res.Yields)
}

func TestSolve_Limit(t *testing.T) {
	g, d := abaBoard(t)

	res, err := solver.Solve(context.Background(), g, d, solver.WithLimit(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"ab", "ba", "ba"}, res.Words)
	assert.True(t, res.Truncated)
}

func TestSolve_LengthOptions(t *testing.T) {
	g, err := grid.New(2, 2, []string{"a", "p", "x", "p"})
	require.NoError(t, err)
	d := trie.Build([]string{"a", "ap", "app"})

	res, err := solver.Solve(context.Background(), g, d,
		solver.WithMinWordLength(2),
		solver.WithMaxPathLength(2),
		solver.WithUnique(true),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ap"}, res.Words)
}

func TestSolve_Cancelled(t *testing.T) {
	g, d := abaBoard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := solver.Solve(ctx, g, d)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Words)
}

func TestSolve_LogsSummary(t *testing.T) {
	g, d := abaBoard(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := solver.Solve(context.Background(), g, d, solver.WithLogger(logger))
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "solve finished", event["message"])
	assert.Equal(t, "debug", event["level"])
	assert.EqualValues(t, 4, event["words"])
	assert.EqualValues(t, 1, event["rows"])
	assert.EqualValues(t, 3, event["cols"])
	assert.Equal(t, false, event["truncated"])
}
