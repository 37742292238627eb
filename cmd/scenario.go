package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// ScenarioConfig is the on-disk shape of a scenario preset file.
type ScenarioConfig struct {
	Paging        map[string]PagingScenario `yaml:"paging"`
	Fragmentation map[string]FragScenario   `yaml:"fragmentation"`
}

// PagingScenario is a named page-replacement exercise.
type PagingScenario struct {
	Refs      string `yaml:"refs"`
	Frames    int    `yaml:"frames"`
	Algorithm string `yaml:"algorithm"`
}

// FragScenario is a named fragmentation run.
type FragScenario struct {
	Memory       int `yaml:"memory"`
	Events       int `yaml:"events"`
	MinBlockSize int `yaml:"min_block_size"`
	MaxBlockSize int `yaml:"max_block_size"`
}

// LoadScenarioConfig reads and parses a scenario preset file.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return &cfg, nil
}

// GetPagingScenario loads the named paging preset from path.
func GetPagingScenario(path, name string) (*PagingScenario, error) {
	cfg, err := LoadScenarioConfig(path)
	if err != nil {
		return nil, err
	}
	scenario, ok := cfg.Paging[name]
	if !ok {
		return nil, fmt.Errorf("no paging scenario %q in %s: %w", name, path, sim.ErrInvalidConfiguration)
	}
	logrus.Infof("Using paging scenario %q", name)
	return &scenario, nil
}

// GetFragScenario loads the named fragmentation preset from path.
func GetFragScenario(path, name string) (*FragScenario, error) {
	cfg, err := LoadScenarioConfig(path)
	if err != nil {
		return nil, err
	}
	scenario, ok := cfg.Fragmentation[name]
	if !ok {
		return nil, fmt.Errorf("no fragmentation scenario %q in %s: %w", name, path, sim.ErrInvalidConfiguration)
	}
	logrus.Infof("Using fragmentation scenario %q", name)
	return &scenario, nil
}
