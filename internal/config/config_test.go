package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	deperrors "depscope/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scanner.OutputPath != ".depscope/dependencies.json" {
		t.Errorf("Scanner.OutputPath = %q", cfg.Scanner.OutputPath)
	}
	if cfg.Graph.NodeCap != 300 || cfg.Graph.KeepSelfEdges {
		t.Errorf("Graph = %+v", cfg.Graph)
	}
	want := TraversalConfig{ContextDepth: 1, ContextResultCap: 30, FocusDepth: 2, FocusMaxFanout: 100, SlowFocusMs: 50}
	if cfg.Traversal != want {
		t.Errorf("Traversal = %+v, want %+v", cfg.Traversal, want)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "human" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("Watch.DebounceMs = %d", cfg.Watch.DebounceMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{"valid", func(*Config) {}, "", false},
		{"zero node cap", func(c *Config) { c.Graph.NodeCap = 0 }, "graph.nodeCap", true},
		{"negative result cap", func(c *Config) { c.Traversal.ContextResultCap = -1 }, "traversal.contextResultCap", true},
		{"zero fanout", func(c *Config) { c.Traversal.FocusMaxFanout = 0 }, "traversal.focusMaxFanout", true},
		{"zero focus depth allowed", func(c *Config) { c.Traversal.FocusDepth = 0 }, "", false},
		{"negative focus depth", func(c *Config) { c.Traversal.FocusDepth = -2 }, "traversal.focusDepth", true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format", true},
		{"empty scanner path", func(c *Config) { c.Scanner.OutputPath = "" }, "scanner.outputPath", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !deperrors.Is(err, deperrors.ConfigInvalid) {
				t.Errorf("expected CONFIG_INVALID, got %v", err)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("expected ConfigError for %s, got %v", tt.field, err)
			}
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "graph.nodeCap", Message: "must be positive"}
	want := "config error in field 'graph.nodeCap': must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLoadConfigWithDetails_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	result, err := LoadConfigWithDetails(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigWithDetails() error = %v", err)
	}
	if !result.UsedDefaults || result.ConfigPath != "" {
		t.Errorf("result = %+v", result)
	}
	if result.Config.Graph.NodeCap != 300 {
		t.Errorf("NodeCap = %d", result.Config.Graph.NodeCap)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, Dir, "config.json"), `{
		"graph": {"nodeCap": 120, "keepSelfEdges": true},
		"traversal": {"contextResultCap": 10},
		"logging": {"level": "debug"}
	}`)

	result, err := LoadConfigWithDetails(root)
	if err != nil {
		t.Fatalf("LoadConfigWithDetails() error = %v", err)
	}
	cfg := result.Config
	if result.UsedDefaults || result.ConfigPath == "" {
		t.Errorf("expected file to be used: %+v", result)
	}
	if cfg.Graph.NodeCap != 120 || !cfg.Graph.KeepSelfEdges {
		t.Errorf("Graph = %+v", cfg.Graph)
	}
	if cfg.Traversal.ContextResultCap != 10 {
		t.Errorf("ContextResultCap = %d", cfg.Traversal.ContextResultCap)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Traversal.FocusMaxFanout != 100 || cfg.Watch.DebounceMs != 500 {
		t.Errorf("defaults lost: %+v %+v", cfg.Traversal, cfg.Watch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("DEPSCOPE_TRAVERSAL_CONTEXTRESULTCAP", "12")
	t.Setenv("DEPSCOPE_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Traversal.ContextResultCap != 12 {
		t.Errorf("ContextResultCap = %d, want 12", cfg.Traversal.ContextResultCap)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	writeConfig(t, path, `{"graph": {"nodeCap": 99}}`)
	t.Setenv(EnvConfigPath, path)

	result, err := LoadConfigWithDetails(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigWithDetails() error = %v", err)
	}
	if result.ConfigPath != path || result.Config.Graph.NodeCap != 99 {
		t.Errorf("result = %+v, cfg = %+v", result, result.Config.Graph)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		envPath bool
	}{
		{"invalid json", `{"graph": `, false},
		{"invalid value", `{"graph": {"nodeCap": -5}}`, false},
		{"missing explicit file", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.envPath {
				t.Setenv(EnvConfigPath, filepath.Join(root, "nope.json"))
			} else {
				t.Setenv(EnvConfigPath, "")
				writeConfig(t, filepath.Join(root, Dir, "config.json"), tt.content)
			}

			_, err := LoadConfig(root)
			if !deperrors.Is(err, deperrors.ConfigInvalid) {
				t.Errorf("expected CONFIG_INVALID, got %v", err)
			}
		})
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Traversal.FocusDepth = 4
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Traversal.FocusDepth != 4 {
		t.Errorf("FocusDepth = %d, want 4", loaded.Traversal.FocusDepth)
	}
}

func TestScannerOutputPath(t *testing.T) {
	cfg := DefaultConfig()
	root := filepath.FromSlash("/work/app")

	want := filepath.Join(root, ".depscope", "dependencies.json")
	if got := cfg.ScannerOutputPath(root); got != want {
		t.Errorf("ScannerOutputPath() = %q, want %q", got, want)
	}

	abs, _ := filepath.Abs(filepath.Join("tmp", "deps.json"))
	cfg.Scanner.OutputPath = abs
	if got := cfg.ScannerOutputPath(root); got != abs {
		t.Errorf("absolute path should be kept, got %q", got)
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
