package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"nurikabe/internal/core"
)

// PipelineConfig is the YAML settings file read by 'solve run' and written
// by 'solve config': an ordered list of strategy names, matching
// core.StrategiesByName.
type PipelineConfig struct {
	Strategies []string `yaml:"strategies"`
}

// defaultPipelineConfig mirrors core.DefaultStrategies' priority order.
func defaultPipelineConfig() PipelineConfig {
	return PipelineConfig{Strategies: []string{
		"CompleteIslands",
		"SingleLiberties",
		"DualLiberties",
		"AvoidPools",
		"UnreachableCells",
		"Confinement",
		"Hypotheticals",
	}}
}

func loadPipelineConfig(path string) (PipelineConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("solve: reading config %s: %w", path, err)
	}
	var cfg PipelineConfig
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return PipelineConfig{}, fmt.Errorf("solve: parsing config %s: %w", path, err)
	}
	if len(cfg.Strategies) == 0 {
		return PipelineConfig{}, fmt.Errorf("solve: config %s names no strategies", path)
	}
	return cfg, nil
}

func (p PipelineConfig) strategies() ([]core.Strategy, error) {
	return core.StrategiesByName(p.Strategies)
}
