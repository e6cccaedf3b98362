package ingest

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/gulfbridge/leads-cli/internal/model"
)

// SourceConfig describes one configured portal.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Emirate string `yaml:"emirate"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled,omitempty"` // nil means enabled
}

// Registry is the parsed sources file.
type Registry struct {
	Sources []SourceConfig `yaml:"sources"`
}

// LoadRegistry reads the source registry from a YAML file. A missing file
// falls back to the built-in source list so a bare checkout still works.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultRegistry(), nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read sources %s", path)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, eris.Wrap(err, "ingest: parse sources")
	}
	if len(reg.Sources) == 0 {
		return defaultRegistry(), nil
	}
	return &reg, nil
}

// Producers builds one CSV producer per enabled source, sweeping
// rawDir/<source>/ in registry order.
func (r *Registry) Producers(rawDir, charset string) []Producer {
	var producers []Producer
	for _, src := range r.Sources {
		if src.Enabled != nil && !*src.Enabled {
			continue
		}
		producers = append(producers, NewCSVProducer(src.Name, filepath.Join(rawDir, src.Name), charset))
	}
	return producers
}

func defaultRegistry() *Registry {
	reg := &Registry{}
	for _, name := range model.Sources {
		reg.Sources = append(reg.Sources, SourceConfig{Name: name})
	}
	return reg
}
