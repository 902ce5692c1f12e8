package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/smellscan/smellscan/pkg/analysis"
)

// Config is the application-level configuration loaded from config.yml.
// Every field is optional; zero values fall back to the engine defaults.
type Config struct {
	Logger   Logger   `yaml:"logger"`
	Analysis Analysis `yaml:"analysis"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Analysis holds the recognized engine overrides. Anything not listed here
// (severe tiers, debt markers, console function names) is a fixed constant.
type Analysis struct {
	LargeFileLines  int      `yaml:"large_file_lines"`
	ComplexityLimit int      `yaml:"complexity_limit"`
	FunctionLines   int      `yaml:"function_lines"`
	NestingLimit    int      `yaml:"nesting_limit"`
	ParameterLimit  int      `yaml:"parameter_limit"`
	AllowedNumbers  []int    `yaml:"allowed_numbers"`
	ExcludePaths    []string `yaml:"exclude_paths"`
	Extensions      []string `yaml:"extensions"`
}

// LoadYAML decodes a YAML file into data.
func LoadYAML(configPath string, data interface{}) error {
	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return fmt.Errorf("failed to decode %q: %w", configPath, err)
	}
	return nil
}

// LoadConfig reads the configuration file at the given path. A missing file
// is not an error; it yields an empty config so defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EngineConfig merges the configured overrides over the engine defaults.
func EngineConfig(cfg *Config) analysis.Config {
	engine := analysis.DefaultConfig()
	if cfg == nil {
		return engine
	}

	if cfg.Analysis.LargeFileLines > 0 {
		engine.LargeFileLines = cfg.Analysis.LargeFileLines
	}
	if cfg.Analysis.ComplexityLimit > 0 {
		engine.ComplexityLimit = cfg.Analysis.ComplexityLimit
	}
	if cfg.Analysis.FunctionLines > 0 {
		engine.FunctionLines = cfg.Analysis.FunctionLines
	}
	if cfg.Analysis.NestingLimit > 0 {
		engine.NestingLimit = cfg.Analysis.NestingLimit
	}
	if cfg.Analysis.ParameterLimit > 0 {
		engine.ParameterLimit = cfg.Analysis.ParameterLimit
	}
	if len(cfg.Analysis.AllowedNumbers) > 0 {
		engine.AllowedNumbers = cfg.Analysis.AllowedNumbers
	}
	if len(cfg.Analysis.ExcludePaths) > 0 {
		engine.ExcludePaths = cfg.Analysis.ExcludePaths
	}
	if len(cfg.Analysis.Extensions) > 0 {
		engine.Extensions = cfg.Analysis.Extensions
	}
	return engine
}
