package placement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/electra/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Index[int32] {
	t.Helper()
	x := &Index[int32]{}
	require.NoError(t, x.Insert(pt{X: 0, Y: 2}, 1))
	require.NoError(t, x.Insert(pt{X: -2, Y: 4}, 2))
	require.NoError(t, x.Insert(pt{X: 8, Y: 8}, 9))
	return x
}

func TestPersistRestore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cells")
	x := seeded(t)
	require.NoError(t, x.Persist(dir))

	for _, name := range []string{PositionsFile, IDsFile, AreaFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	data, err := os.ReadFile(filepath.Join(dir, PositionsFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"0,2":1,"-2,4":2,"8,8":9}`, string(data))
	data, err = os.ReadFile(filepath.Join(dir, IDsFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":[0,2],"2":[-2,4],"9":[8,8]}`, string(data))

	var back Index[int32]
	require.NoError(t, back.Restore(dir))
	assert.Equal(t, x.Len(), back.Len())
	assert.Equal(t, x.Box(), back.Box())
	assertInverse(t, &back)
	pos, ok := back.Find(9)
	require.True(t, ok)
	assert.Equal(t, pt{X: 8, Y: 8}, pos)
}

func TestRestore_Failures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(t *testing.T, dir string)
		is     error
	}{
		{
			name: "missing area document",
			mutate: func(t *testing.T, dir string) {
				require.NoError(t, os.Remove(filepath.Join(dir, AreaFile)))
			},
			is: os.ErrNotExist,
		},
		{
			name: "positions disagree with ids",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, PositionsFile, `{"0,2":2,"-2,4":1,"8,8":9}`)
			},
			is: ErrCorrupt,
		},
		{
			name: "positions missing an entry",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, PositionsFile, `{"0,2":1,"-2,4":2}`)
			},
			is: ErrCorrupt,
		},
		{
			name: "positions repeat a key in another spelling",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, PositionsFile, `{"0,2":1,"00,2":1,"8,8":9}`)
			},
			is: geom.ErrNotCanonical,
		},
		{
			name: "ids with a padded key",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, IDsFile, `{"01":[0,2],"2":[-2,4],"9":[8,8]}`)
			},
			is: ErrCorrupt,
		},
		{
			name: "ids place two cells on one position",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, IDsFile, `{"1":[0,2],"2":[0,2],"9":[8,8]}`)
			},
			is: ErrCorrupt,
		},
		{
			name: "area out of date",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, AreaFile, `{"x":{"0":1},"y":{"2":1}}`)
			},
			is: ErrCorrupt,
		},
		{
			name: "unparsable ids",
			mutate: func(t *testing.T, dir string) {
				write(t, dir, IDsFile, `[`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, seeded(t).Persist(dir))
			tc.mutate(t, dir)

			var x Index[int32]
			require.NoError(t, x.Insert(pt{X: 5, Y: 5}, 55))
			err := x.Restore(dir)
			require.Error(t, err)
			if tc.is != nil {
				require.ErrorIs(t, err, tc.is)
			}

			id, ok := x.At(pt{X: 5, Y: 5})
			require.True(t, ok, "state must survive a failed restore")
			assert.Equal(t, int32(55), id)
			assert.Equal(t, 1, x.Len())
		})
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
