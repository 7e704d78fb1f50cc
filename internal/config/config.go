package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	deperrors "depscope/internal/errors"
)

const (
	// Dir is the per-workspace directory holding config and scanner output.
	Dir = ".depscope"
	// EnvPrefix prefixes environment overrides, e.g. DEPSCOPE_GRAPH_NODECAP.
	EnvPrefix = "DEPSCOPE"
	// EnvConfigPath names an explicit config file, bypassing <root>/.depscope.
	EnvConfigPath = "DEPSCOPE_CONFIG_PATH"
)

// Config represents the complete depscope configuration
type Config struct {
	Scanner   ScannerConfig   `json:"scanner" mapstructure:"scanner"`
	Graph     GraphConfig     `json:"graph" mapstructure:"graph"`
	Traversal TraversalConfig `json:"traversal" mapstructure:"traversal"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging"`
	Watch     WatchConfig     `json:"watch" mapstructure:"watch"`
}

// ScannerConfig locates the dependency scanner's output
type ScannerConfig struct {
	OutputPath string `json:"outputPath" mapstructure:"outputPath"` // Relative to the workspace root unless absolute
}

// GraphConfig controls the rendering (aggregation) builder
type GraphConfig struct {
	NodeCap       int  `json:"nodeCap" mapstructure:"nodeCap"`
	KeepSelfEdges bool `json:"keepSelfEdges" mapstructure:"keepSelfEdges"`
}

// TraversalConfig holds focus and context bounds
type TraversalConfig struct {
	ContextDepth     int `json:"contextDepth" mapstructure:"contextDepth"`
	ContextResultCap int `json:"contextResultCap" mapstructure:"contextResultCap"`
	FocusDepth       int `json:"focusDepth" mapstructure:"focusDepth"`
	FocusMaxFanout   int `json:"focusMaxFanout" mapstructure:"focusMaxFanout"`
	SlowFocusMs      int `json:"slowFocusMs" mapstructure:"slowFocusMs"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"` // human or json
	Level  string `json:"level" mapstructure:"level"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMs int `json:"debounceMs" mapstructure:"debounceMs"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Scanner: ScannerConfig{
			OutputPath: filepath.ToSlash(filepath.Join(Dir, "dependencies.json")),
		},
		Graph: GraphConfig{
			NodeCap: 300,
		},
		Traversal: TraversalConfig{
			ContextDepth:     1,
			ContextResultCap: 30,
			FocusDepth:       2,
			FocusMaxFanout:   100,
			SlowFocusMs:      50,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}

// LoadResult reports where a configuration came from.
type LoadResult struct {
	Config       *Config
	ConfigPath   string // Empty when no file was read
	UsedDefaults bool
}

// LoadConfig loads configuration from <repoRoot>/.depscope/config.json
func LoadConfig(repoRoot string) (*Config, error) {
	result, err := LoadConfigWithDetails(repoRoot)
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// LoadConfigWithDetails loads configuration with environment overrides. The
// file named by DEPSCOPE_CONFIG_PATH wins over the workspace file; a missing
// workspace file means defaults.
func LoadConfigWithDetails(repoRoot string) (*LoadResult, error) {
	v := newViper()

	explicit := os.Getenv(EnvConfigPath)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath(filepath.Join(repoRoot, Dir))
	}

	result := &LoadResult{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, deperrors.New(deperrors.ConfigInvalid, "failed to read config", err)
		}
		result.UsedDefaults = true
	} else {
		result.ConfigPath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, deperrors.New(deperrors.ConfigInvalid, "failed to decode config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result.Config = &cfg
	return result, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("scanner.outputPath", d.Scanner.OutputPath)
	v.SetDefault("graph.nodeCap", d.Graph.NodeCap)
	v.SetDefault("graph.keepSelfEdges", d.Graph.KeepSelfEdges)
	v.SetDefault("traversal.contextDepth", d.Traversal.ContextDepth)
	v.SetDefault("traversal.contextResultCap", d.Traversal.ContextResultCap)
	v.SetDefault("traversal.focusDepth", d.Traversal.FocusDepth)
	v.SetDefault("traversal.focusMaxFanout", d.Traversal.FocusMaxFanout)
	v.SetDefault("traversal.slowFocusMs", d.Traversal.SlowFocusMs)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("watch.debounceMs", d.Watch.DebounceMs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Save writes the configuration to <repoRoot>/.depscope/config.json
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// ScannerOutputPath resolves Scanner.OutputPath against repoRoot.
func (c *Config) ScannerOutputPath(repoRoot string) string {
	p := filepath.FromSlash(c.Scanner.OutputPath)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(repoRoot, p)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"graph.nodeCap", c.Graph.NodeCap},
		{"traversal.contextDepth", c.Traversal.ContextDepth},
		{"traversal.contextResultCap", c.Traversal.ContextResultCap},
		{"traversal.focusMaxFanout", c.Traversal.FocusMaxFanout},
		{"traversal.slowFocusMs", c.Traversal.SlowFocusMs},
		{"watch.debounceMs", c.Watch.DebounceMs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return invalid(p.field, fmt.Sprintf("must be positive, got %d", p.value))
		}
	}

	if c.Traversal.FocusDepth < 0 {
		return invalid("traversal.focusDepth", "must not be negative")
	}
	if c.Scanner.OutputPath == "" {
		return invalid("scanner.outputPath", "must not be empty")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "human", "json":
	default:
		return invalid("logging.format", fmt.Sprintf("unknown format %q", c.Logging.Format))
	}
	return nil
}

func invalid(field, message string) error {
	return deperrors.New(deperrors.ConfigInvalid, "invalid configuration", &ConfigError{Field: field, Message: message})
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
