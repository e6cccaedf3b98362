package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfbridge/leads-cli/internal/model"
)

func TestLoadRegistry_MissingFileUsesDefaults(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "sources.yaml"))
	require.NoError(t, err)
	require.Len(t, reg.Sources, len(model.Sources))
	assert.Equal(t, model.SourceDubaiChamber, reg.Sources[0].Name)
}

func TestLoadRegistry_ParsesAndFiltersDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	yml := `
sources:
  - name: dubai_chamber
    emirate: dubai
    url: https://dcdigitalservices.dubaichamber.com
  - name: sharjah_sedd
    emirate: sharjah
    enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	require.Len(t, reg.Sources, 2)

	producers := reg.Producers("/data/raw", "")
	require.Len(t, producers, 1)
	assert.Equal(t, model.SourceDubaiChamber, producers[0].Name())
}

func TestRegistry_ProducersSweepRawDir(t *testing.T) {
	reg := defaultRegistry()
	producers := reg.Producers("raw", "")
	require.Len(t, producers, len(model.Sources))
	for i, p := range producers {
		assert.Equal(t, model.Sources[i], p.Name())
	}
}
