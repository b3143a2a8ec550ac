package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "rope.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestLoadConfig_Success(t *testing.T) {
	configPath := writeConfig(t, `parts:
  - name: short
    knots: 2
  - knots: 5
  - name: long
    knots: 10
`)
	t.Setenv(configPathEnv, configPath)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if len(cfg.Parts) != 3 {
		t.Fatalf("Expected 3 parts, got %d", len(cfg.Parts))
	}
	if cfg.Parts[0].Name != "short" || cfg.Parts[0].Knots != 2 {
		t.Errorf("Unexpected first part: %+v", cfg.Parts[0])
	}
	// Unnamed parts are named after their position
	if cfg.Parts[1].Name != "part2" {
		t.Errorf("Expected default name 'part2', got '%s'", cfg.Parts[1].Name)
	}

	parts := cfg.SolverParts()
	if len(parts) != 3 || parts[2].Name != "long" || parts[2].Knots != 10 {
		t.Errorf("Unexpected solver parts: %+v", parts)
	}
}

func TestLoadConfig_DefaultPathMissing(t *testing.T) {
	t.Setenv(configPathEnv, "")
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if len(cfg.Parts) != 2 {
		t.Fatalf("Expected 2 default parts, got %d", len(cfg.Parts))
	}
	if cfg.Parts[0].Knots != 2 || cfg.Parts[1].Knots != 10 {
		t.Errorf("Unexpected default parts: %+v", cfg.Parts)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	t.Setenv(configPathEnv, "/nonexistent/path/rope.yaml")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}

	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `parts: [{name: test, knots: 2`)
	t.Setenv(configPathEnv, configPath)

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}

	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		parts   []PartConfig
		wantErr string
	}{
		{
			name:    "no parts",
			parts:   nil,
			wantErr: "no parts configured",
		},
		{
			name:    "single knot",
			parts:   []PartConfig{{Name: "part1", Knots: 1}},
			wantErr: "invalid knots",
		},
		{
			name:    "duplicate names",
			parts:   []PartConfig{{Name: "part1", Knots: 2}, {Name: "part1", Knots: 10}},
			wantErr: "duplicate part name",
		},
		{
			name:  "valid",
			parts: []PartConfig{{Name: "part1", Knots: 2}, {Name: "part2", Knots: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Parts: tt.parts}

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected validation error %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected '%s' error, got: %v", tt.wantErr, err)
			}
		})
	}
}
