package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/clearpath-dev/clearpath/internal/category"
)

// FileName is the config file kept in the data directory.
const FileName = "clearpath.yaml"

// Config represents the top-level clearpath.yaml configuration.
type Config struct {
	Profile    ProfileConfig  `yaml:"profile"`
	Categories CategoryConfig `yaml:"categories"`
}

// ProfileConfig seeds the user profile.
type ProfileConfig struct {
	Name          string  `yaml:"name"`
	MonthlyIncome float64 `yaml:"monthly_income"`
}

// CategoryConfig holds user-defined classification rules. They run ahead of
// the built-in table, so they can shadow it.
type CategoryConfig struct {
	Rules []CategoryRule `yaml:"rules,omitempty"`
}

// CategoryRule is one user-defined description pattern.
type CategoryRule struct {
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
}

// Load reads a clearpath.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{Name: name},
	}
}

// CategoryRules compiles the user-defined rules. Rules naming an unknown
// category or carrying a bad pattern are rejected, not skipped: a silently
// dropped rule is harder to diagnose than a load error.
func (c *Config) CategoryRules() ([]category.Rule, error) {
	var rules []category.Rule
	for _, r := range c.Categories.Rules {
		cat := category.Category(r.Category)
		if !category.Valid(cat) {
			return nil, fmt.Errorf("unknown category %q in config rule", r.Category)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern for category %q: %w", r.Category, err)
		}
		rules = append(rules, category.Rule{Category: cat, Pattern: re})
	}
	return rules, nil
}
