package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/units"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "planit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(t *testing.T, seed int64) (plan.Request, *layout.LayoutResult) {
	t.Helper()
	side := math.Sqrt(units.SquareMetersFromAcres(10))
	req := plan.Request{
		Name:     "store-test",
		Boundary: [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}},
		Area:     plan.AreaSummary{Acres: 10},
		Seed:     seed,
	}
	result, _, err := layout.Generate(req)
	require.NoError(t, err)
	return req, result
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	req, result := testRun(t, 42)

	id, err := s.Save(ctx, req, result)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "store-test", run.Name)
	assert.Equal(t, int64(42), run.Seed)
	assert.InDelta(t, 10.0, run.Acres, 1e-9)
	require.NotNil(t, run.Result)
	assert.Equal(t, result.Rows, run.Result.Rows)
	assert.Equal(t, len(result.Plots), len(run.Result.Plots))
	assert.InDelta(t, result.Ledger.TotalMarla, run.Result.Ledger.TotalMarla, 1e-9)
}

func TestGetUnknownID(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirstWithoutBlobs(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	var ids []string
	for _, seed := range []int64{1, 2, 3} {
		req, result := testRun(t, seed)
		id, err := s.Save(ctx, req, result)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for _, run := range runs {
		assert.Nil(t, run.Result, "listing should not carry result blobs")
		assert.Contains(t, ids, run.ID)
	}
	for i := 1; i < len(runs); i++ {
		assert.False(t, runs[i].CreatedAt.After(runs[i-1].CreatedAt), "runs should list newest first")
	}
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	for _, seed := range []int64{1, 2, 3, 4} {
		req, result := testRun(t, seed)
		_, err := s.Save(ctx, req, result)
		require.NoError(t, err)
	}
	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	req, result := testRun(t, 7)
	id, err := s.Save(ctx, req, result)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)
}
