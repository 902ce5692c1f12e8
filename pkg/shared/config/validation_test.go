package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "empty config is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "known log level",
			mutate: func(cfg *Config) { cfg.Logger.Level = "debug" },
		},
		{
			name:   "log level is case insensitive",
			mutate: func(cfg *Config) { cfg.Logger.Level = "DEBUG" },
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Logger.Level = "verbose" },
			wantErr: "unknown log level",
		},
		{
			name:    "negative threshold",
			mutate:  func(cfg *Config) { cfg.Analysis.NestingLimit = -1 },
			wantErr: "must not be negative",
		},
		{
			name:    "extension without a dot",
			mutate:  func(cfg *Config) { cfg.Analysis.Extensions = []string{"ts"} },
			wantErr: "must start with a dot",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}
