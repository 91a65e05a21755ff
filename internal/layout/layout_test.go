package layout

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/geom"
	"github.com/specialistvlad/electra/internal/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pt = geom.Point[int64]
type size = geom.Size[int64]

func populated(t *testing.T) *Layout[int64] {
	t.Helper()
	l := New[int64]()
	require.NoError(t, l.PlaceCell(pt{X: 0, Y: 2}, 1))
	require.NoError(t, l.PlaceCell(pt{X: -2, Y: 4}, 2))
	require.NoError(t, l.AddWire([]pt{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}))
	require.NoError(t, l.AddWire([]pt{{X: 10, Y: 0}, {X: 9, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 1}}))
	return l
}

func TestLayout_Stats(t *testing.T) {
	l := populated(t)
	expected := Stats[int64]{
		Cells:   2,
		Wires:   2,
		CellBox: size{Width: 3, Height: 3},
		WireBox: size{Width: 8, Height: 4},
		Extent:  size{Width: 13, Height: 5},
	}
	if diff := cmp.Diff(expected, l.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, expected.Extent, l.Extent())

	require.True(t, l.RemoveWire(pt{X: 10, Y: 0}, pt{X: 8, Y: 1}))
	require.True(t, l.RemoveWire(pt{X: 3, Y: 0}, pt{X: 3, Y: 3}))
	assert.Equal(t, size{Width: 3, Height: 3}, l.Extent())

	require.True(t, l.RemoveCell(1))
	require.True(t, l.RemoveCell(2))
	assert.Equal(t, size{}, l.Extent())
}

func TestLayout_ExtentWiresOnly(t *testing.T) {
	l := New[int64]()
	require.NoError(t, l.AddWire([]pt{{X: -1, Y: -1}, {X: -1, Y: 0}}))
	assert.Equal(t, size{Width: 1, Height: 2}, l.Extent())
}

func TestLayout_Lookups(t *testing.T) {
	l := populated(t)

	id, ok := l.CellAt(pt{X: -2, Y: 4})
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	pos, ok := l.FindCell(1)
	require.True(t, ok)
	assert.Equal(t, pt{X: 0, Y: 2}, pos)

	points, ok := l.FindWire(pt{X: 10, Y: 0}, pt{X: 8, Y: 1})
	require.True(t, ok)
	assert.Equal(t, []pt{{X: 10, Y: 0}, {X: 9, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 1}}, points)

	_, ok = l.FindWire(pt{X: 8, Y: 1}, pt{X: 10, Y: 0})
	assert.False(t, ok)

	assert.Equal(t, []Cell[int64]{{Position: pt{X: -2, Y: 4}, ID: 2}, {Position: pt{X: 0, Y: 2}, ID: 1}}, l.Cells())
	assert.Len(t, l.Wires(), 2)
}

func TestLayout_AddWireValidates(t *testing.T) {
	l := New[int64]()
	require.ErrorIs(t, l.AddWire(nil), geom.ErrEmptyPath)
	require.ErrorIs(t, l.AddWire([]pt{{X: 0, Y: 0}, {X: 1, Y: 1}}), geom.ErrNotOrthogonal)
	assert.Equal(t, 0, l.Stats().Wires)
}

func TestLayout_PlaceCellRejectsCollisions(t *testing.T) {
	l := populated(t)
	require.ErrorIs(t, l.PlaceCell(pt{X: 5, Y: 5}, 1), placement.ErrDuplicateID)
	require.ErrorIs(t, l.PlaceCell(pt{X: 0, Y: 2}, 7), placement.ErrOccupied)
	assert.Equal(t, 2, l.Stats().Cells)
}

func TestLayout_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snap")
	l := populated(t)
	require.NoError(t, l.Save(dir))

	assert.FileExists(t, filepath.Join(dir, WiresFile))
	assert.FileExists(t, filepath.Join(dir, CellsDir, placement.IDsFile))

	back := New[int64]()
	require.NoError(t, back.PlaceCell(pt{X: 100, Y: 100}, 100))
	require.NoError(t, back.Load(dir))

	if diff := cmp.Diff(l.Stats(), back.Stats()); diff != "" {
		t.Errorf("Stats() after Load mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, l.Cells(), back.Cells())
	assert.Equal(t, l.Wires(), back.Wires())
	_, ok := back.FindCell(100)
	assert.False(t, ok, "Load replaces the previous contents")
}

func TestLayout_LoadFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, populated(t).Save(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, CellsDir, placement.AreaFile)))

	l := New[int64]()
	require.NoError(t, l.PlaceCell(pt{X: 1, Y: 1}, 11))
	err := l.Load(dir)
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, []Cell[int64]{{Position: pt{X: 1, Y: 1}, ID: 11}}, l.Cells())
	assert.Empty(t, l.Wires())
}

func TestApply(t *testing.T) {
	m := &config.Model{
		Cells: []*config.Cell{
			{Name: "and_1", ID: 9, Position: pt{X: 8, Y: 8}},
		},
		Wires: []*config.Wire{
			{Name: "clk", Points: []pt{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}},
		},
	}
	l := New[int64]()
	require.NoError(t, Apply(l, m))
	id, ok := l.CellAt(pt{X: 8, Y: 8})
	require.True(t, ok)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, 1, l.Stats().Wires)

	m.Cells = append(m.Cells, &config.Cell{Name: "or_1", ID: 9, Position: pt{X: 1, Y: 1}, Source: "cells.hcl:5"})
	err := Apply(New[int64](), m)
	require.ErrorIs(t, err, placement.ErrDuplicateID)
	assert.Contains(t, err.Error(), `cell "or_1" (cells.hcl:5)`)
}

func TestApply_SameModelTwice(t *testing.T) {
	m := &config.Model{
		Cells: []*config.Cell{{Name: "and_1", ID: 9, Position: pt{X: 8, Y: 8}}},
		Wires: []*config.Wire{
			{Name: "clk", Points: []pt{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}},
			{Name: "bus", Points: []pt{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		},
	}
	l := New[int64]()
	require.NoError(t, Apply(l, m))
	before := l.Stats()

	require.NoError(t, Apply(l, m))
	assert.Equal(t, before, l.Stats())
	assert.Equal(t, 2, l.Stats().Wires)

	// Same endpoints with different geometry is still a new wire.
	m.Wires = []*config.Wire{{Name: "detour", Points: []pt{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}}}
	require.NoError(t, Apply(l, m))
	assert.Equal(t, 3, l.Stats().Wires)
}

func TestLayout_ConcurrentAccess(t *testing.T) {
	l := New[int64]()
	var wg sync.WaitGroup
	for i := range int64(16) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.PlaceCell(pt{X: i, Y: 0}, i))
			assert.NoError(t, l.AddWire([]pt{{X: i, Y: 1}, {X: i, Y: 2}}))
			_ = l.Stats()
		}()
	}
	wg.Wait()
	assert.Equal(t, Stats[int64]{
		Cells:   16,
		Wires:   16,
		CellBox: size{Width: 16, Height: 1},
		WireBox: size{Width: 16, Height: 2},
		Extent:  size{Width: 16, Height: 3},
	}, l.Stats())
}
