package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateScanArgs(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		options RunOptionsScan
		args    []string
		wantErr string
	}{
		{
			// valid: smellscan scan /path/to/target
			name:    "valid target path",
			options: RunOptionsScan{ReportFormat: "markdown", Threads: 1},
			args:    []string{tmpDir},
		},
		{
			name:    "valid sarif format",
			options: RunOptionsScan{ReportFormat: "sarif", Threads: 4},
			args:    []string{tmpDir},
		},
		{
			name:    "missing target path",
			options: RunOptionsScan{ReportFormat: "markdown", Threads: 1},
			args:    []string{},
			wantErr: "a target path must be specified",
		},
		{
			name:    "too many arguments",
			options: RunOptionsScan{ReportFormat: "markdown", Threads: 1},
			args:    []string{tmpDir, tmpDir},
			wantErr: "only one target path may be specified",
		},
		{
			name:    "nonexistent target path",
			options: RunOptionsScan{ReportFormat: "markdown", Threads: 1},
			args:    []string{tmpDir + "/missing"},
			wantErr: "not scannable",
		},
		{
			name:    "unknown report format",
			options: RunOptionsScan{ReportFormat: "xml", Threads: 1},
			args:    []string{tmpDir},
			wantErr: "unknown report format",
		},
		{
			name:    "non-positive thread count",
			options: RunOptionsScan{ReportFormat: "markdown", Threads: 0},
			args:    []string{tmpDir},
			wantErr: "must be a positive integer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScanArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
