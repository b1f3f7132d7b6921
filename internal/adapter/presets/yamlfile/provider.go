package yamlfile

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"wumpusworld/internal/app/ports"
	"wumpusworld/internal/domain/world"
)

//go:embed default_presets.yaml
var defaultPresets []byte

type presetFile struct {
	Presets []ports.Preset `yaml:"presets"`
}

// Provider serves named environment presets loaded once from YAML.
type Provider struct {
	byName map[string]ports.Preset
	order  []string
}

// Default returns the presets compiled into the binary.
func Default() (*Provider, error) {
	return LoadFromBytes(defaultPresets)
}

func LoadFromFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses presets and rejects any whose placements would not
// initialize an environment.
func LoadFromBytes(data []byte) (*Provider, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing presets YAML: %w", err)
	}

	p := &Provider{byName: make(map[string]ports.Preset, len(file.Presets))}
	for _, preset := range file.Presets {
		preset.Name = strings.TrimSpace(preset.Name)
		if preset.Name == "" {
			return nil, fmt.Errorf("preset without a name")
		}
		if _, dup := p.byName[preset.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", preset.Name)
		}
		size := preset.Placements.Size
		if size == 0 {
			size = world.DefaultSize
			preset.Placements.Size = size
		}
		if _, err := world.Initialize(size, preset.Placements); err != nil {
			return nil, fmt.Errorf("validating preset %q: %w", preset.Name, err)
		}
		p.byName[preset.Name] = preset
		p.order = append(p.order, preset.Name)
	}
	sort.Strings(p.order)
	return p, nil
}

func (p *Provider) List(_ context.Context) ([]ports.Preset, error) {
	out := make([]ports.Preset, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.byName[name])
	}
	return out, nil
}

func (p *Provider) Get(_ context.Context, name string) (ports.Preset, error) {
	preset, ok := p.byName[strings.TrimSpace(name)]
	if !ok {
		return ports.Preset{}, ports.ErrNotFound
	}
	return preset, nil
}
