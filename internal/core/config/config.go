package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"lazyimport/internal/engine/lint"
)

type Config struct {
	Version   int                 `toml:"version"`
	ScanPaths []string            `toml:"scan_paths"`
	Rules     map[string]Rule     `toml:"rules"`
	Languages map[string]Language `toml:"languages"`
	Exclude   Exclude             `toml:"exclude"`
	Watch     Watch               `toml:"watch"`
	History   History             `toml:"history"`
	Metrics   Metrics             `toml:"metrics"`
	Output    Output              `toml:"output"`
}

// Rule carries the per-rule settings. Keys under [rules] that the linter
// does not recognize are kept in the map but never read, which makes
// unrecognized rules a no-op instead of an error.
type Rule struct {
	Enabled             *bool    `toml:"enabled"`
	Severity            string   `toml:"severity"`
	AdditionalHeavyDeps []string `toml:"additional_heavy_deps"`
}

type Language struct {
	Extensions []string `toml:"extensions"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	Workers  int           `toml:"workers"`
}

type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type Metrics struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

type Output struct {
	SARIF string `toml:"sarif"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := validateVersion(&cfg); err != nil {
		return nil, err
	}
	if err := validateRules(&cfg); err != nil {
		return nil, err
	}
	if err := validateLanguages(&cfg); err != nil {
		return nil, err
	}
	if err := validateMetrics(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.Workers <= 0 {
		cfg.Watch.Workers = 4
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{".git", "dist", "build"}
	}
	if strings.TrimSpace(cfg.History.Path) == "" {
		cfg.History.Path = "data/lazyimport.db"
	}
	if strings.TrimSpace(cfg.Metrics.Address) == "" {
		cfg.Metrics.Address = "127.0.0.1:9431"
	}
}

// LazyImportRule returns the settings of the heavy-deps rule with defaults
// applied: enabled, warning severity, no extra dependencies.
func (c *Config) LazyImportRule() Rule {
	rule := c.Rules[lint.RuleID]
	if rule.Enabled == nil {
		enabled := true
		rule.Enabled = &enabled
	}
	if strings.TrimSpace(rule.Severity) == "" {
		rule.Severity = string(lint.SeverityWarning)
	}
	return rule
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateRules(cfg *Config) error {
	rule, ok := cfg.Rules[lint.RuleID]
	if !ok {
		return nil
	}
	severity := strings.ToLower(strings.TrimSpace(rule.Severity))
	if severity != "" && !lint.Severity(severity).Valid() {
		return fmt.Errorf("rules.%q.severity must be one of: warning, error", lint.RuleID)
	}
	for i, dep := range rule.AdditionalHeavyDeps {
		if strings.TrimSpace(dep) == "" {
			return fmt.Errorf("rules.%q.additional_heavy_deps[%d] must not be empty", lint.RuleID, i)
		}
	}
	return nil
}

func validateLanguages(cfg *Config) error {
	for language, settings := range cfg.Languages {
		if strings.TrimSpace(language) == "" {
			return fmt.Errorf("languages key must not be empty")
		}
		for _, ext := range settings.Extensions {
			if strings.TrimSpace(ext) == "" {
				return fmt.Errorf("languages.%s.extensions must not include empty values", language)
			}
		}
	}
	return nil
}

func validateMetrics(cfg *Config) error {
	if cfg.Metrics.Enabled && strings.TrimSpace(cfg.Metrics.Address) == "" {
		return fmt.Errorf("metrics.address must not be empty when metrics.enabled=true")
	}
	return nil
}
