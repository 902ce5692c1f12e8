package config

import (
	"fmt"
	"strings"
)

var validLogLevels = []string{"", "trace", "debug", "info", "warn", "error"}

// ValidateConfig checks if the loaded configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := validateAnalysisConfig(&cfg.Analysis); err != nil {
		return fmt.Errorf("YAML global config: analysis directive is invalid: %w", err)
	}
	return nil
}

func validateLoggerConfig(loggerConfig *Logger) error {
	level := strings.ToLower(loggerConfig.Level)
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", loggerConfig.Level)
}

func validateAnalysisConfig(analysisConfig *Analysis) error {
	thresholds := map[string]int{
		"large_file_lines": analysisConfig.LargeFileLines,
		"complexity_limit": analysisConfig.ComplexityLimit,
		"function_lines":   analysisConfig.FunctionLines,
		"nesting_limit":    analysisConfig.NestingLimit,
		"parameter_limit":  analysisConfig.ParameterLimit,
	}
	for name, value := range thresholds {
		if value < 0 {
			return fmt.Errorf("%s must not be negative: %d", name, value)
		}
	}

	for _, ext := range analysisConfig.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}
