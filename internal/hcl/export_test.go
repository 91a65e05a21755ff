package hcl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_RoundTrip(t *testing.T) {
	dir := writeLayout(t, map[string]string{"main.hcl": fullLayout})
	loaded, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, loaded))
	out := buf.String()
	assert.Contains(t, out, `cell "and_1" {`)
	assert.Contains(t, out, `wire "clk" {`)
	assert.Contains(t, out, "encoded")
	assert.NotContains(t, out, "points")

	exported := filepath.Join(t.TempDir(), "exported.hcl")
	require.NoError(t, os.WriteFile(exported, buf.Bytes(), 0o644))
	back, err := NewLoader().Load(context.Background(), exported)
	require.NoError(t, err)

	ignoreSource := cmp.Options{
		cmpopts.IgnoreFields(config.Cell{}, "Source"),
		cmpopts.IgnoreFields(config.Wire{}, "Source"),
	}
	if diff := cmp.Diff(loaded, back, ignoreSource); diff != "" {
		t.Errorf("export round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExport_RejectsInvalidModel(t *testing.T) {
	m := &config.Model{Wires: []*config.Wire{{Name: "w", Points: []config.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}}}}
	var buf bytes.Buffer
	err := Export(&buf, m)
	require.ErrorIs(t, err, geom.ErrNotOrthogonal)
	assert.Zero(t, buf.Len())
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, &config.Model{}))
	assert.Empty(t, bytes.TrimSpace(buf.Bytes()))
}
