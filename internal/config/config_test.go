package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test default values
	if cfg.InputDir != "" {
		t.Errorf("Expected default input directory to be empty, got '%s'", cfg.InputDir)
	}

	if cfg.OutputPath != "data/output/resultado.json" {
		t.Errorf("Expected default output path to be 'data/output/resultado.json', got '%s'", cfg.OutputPath)
	}

	if cfg.XLSXPath != "" {
		t.Errorf("Expected default XLSX path to be empty, got '%s'", cfg.XLSXPath)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.Verbose {
		t.Error("Expected verbose to be disabled by default")
	}

	if cfg.LogJSON {
		t.Error("Expected JSON logging to be disabled by default")
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}
}

// validConfig returns a configuration that passes Validate.
func validConfig(t *testing.T) *Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(t *testing.T, cfg *Config) {},
		},
		{
			name: "empty input directory",
			mutate: func(t *testing.T, cfg *Config) {
				cfg.InputDir = ""
			},
			wantErr: "input directory cannot be empty",
		},
		{
			name: "missing input directory",
			mutate: func(t *testing.T, cfg *Config) {
				cfg.InputDir = filepath.Join(cfg.InputDir, "does-not-exist")
			},
			wantErr: "input directory does not exist",
		},
		{
			name: "input path is a file",
			mutate: func(t *testing.T, cfg *Config) {
				path := filepath.Join(cfg.InputDir, "plain.txt")
				if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
					t.Fatalf("Failed to create file: %v", err)
				}
				cfg.InputDir = path
			},
			wantErr: "input path is not a directory",
		},
		{
			name: "empty output path",
			mutate: func(t *testing.T, cfg *Config) {
				cfg.OutputPath = ""
			},
			wantErr: "output path cannot be empty",
		},
		{
			name: "zero max file size",
			mutate: func(t *testing.T, cfg *Config) {
				cfg.MaxFileSize = 0
			},
			wantErr: "maximum file size must be positive",
		},
		{
			name: "negative max file size",
			mutate: func(t *testing.T, cfg *Config) {
				cfg.MaxFileSize = -1
			},
			wantErr: "maximum file size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(t, cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Config.Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Config.Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Config.Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		InputDir:    "/home/user/licitacoes",
		OutputPath:  "resultado.json",
		XLSXPath:    "itens.xlsx",
		Verbose:     true,
		LogJSON:     false,
		MaxFileSize: 1024,
	}

	result := cfg.String()

	// Check that the string contains expected components
	expectedSubstrings := []string{
		"InputDir: /home/user/licitacoes",
		"OutputPath: resultado.json",
		"XLSXPath: itens.xlsx",
		"Verbose: true",
		"LogJSON: false",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}
