// Package config loads .ecocritic.yaml and environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dshills/ecocritic/internal/batch"
	"github.com/dshills/ecocritic/internal/profile"
	"github.com/dshills/ecocritic/internal/rules"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// FileName is the config file looked up in the working directory and $HOME.
const FileName = ".ecocritic.yaml"

// EnvPrefix prefixes environment overrides, e.g. ECOCRITIC_FORMAT.
const EnvPrefix = "ECOCRITIC"

// Config is the CLI configuration. Rule fields left unset keep the
// thresholds of the selected profile.
type Config struct {
	TaxonomyPath string      `mapstructure:"taxonomy_path" yaml:"taxonomy_path"`
	Profile      string      `mapstructure:"profile" yaml:"profile"`
	Format       string      `mapstructure:"format" yaml:"format"`
	Concurrency  int         `mapstructure:"concurrency" yaml:"concurrency"`
	Select       string      `mapstructure:"select" yaml:"select,omitempty"`
	Rules        RulesConfig `mapstructure:"rules" yaml:"rules"`
}

// RulesConfig overrides individual validation thresholds.
type RulesConfig struct {
	CoverageMinimum     *float64              `mapstructure:"coverage_minimum" yaml:"coverage_minimum,omitempty"`
	CoverageRecommended *float64              `mapstructure:"coverage_recommended" yaml:"coverage_recommended,omitempty"`
	CoverageWeight      *float64              `mapstructure:"coverage_weight" yaml:"coverage_weight,omitempty"`
	DistributionWeight  *float64              `mapstructure:"distribution_weight" yaml:"distribution_weight,omitempty"`
	DomainCoverageFloor *float64              `mapstructure:"domain_coverage_floor" yaml:"domain_coverage_floor,omitempty"`
	Domains             map[string]BandConfig `mapstructure:"domains" yaml:"domains,omitempty"`
	CriticalDomains     []string              `mapstructure:"critical_domains" yaml:"critical_domains,omitempty"`
}

// BandConfig overrides one domain's distribution band.
type BandConfig struct {
	Min    *float64 `mapstructure:"min" yaml:"min,omitempty"`
	Max    *float64 `mapstructure:"max" yaml:"max,omitempty"`
	Target *float64 `mapstructure:"target" yaml:"target,omitempty"`
}

// Load reads configuration into v. When explicitPath is set that file must
// exist; otherwise FileName is searched for in "." and $HOME and a missing
// file is not an error. It returns the config and the file used, if any.
func Load(v *viper.Viper, explicitPath string) (Config, string, error) {
	v.SetDefault("taxonomy_path", taxonomy.DefaultPath)
	v.SetDefault("profile", profile.Default)
	v.SetDefault("format", "json")
	v.SetDefault("concurrency", batch.DefaultConcurrency)
	v.SetDefault("select", "")

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Concurrency < 1 {
		return Config{}, "", fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	return cfg, v.ConfigFileUsed(), nil
}

// ApplyRules overlays the configured overrides on base and validates the
// result. base is not modified.
func (c Config) ApplyRules(base rules.Rules) (rules.Rules, error) {
	r := base.Clone()
	rc := c.Rules
	set(&r.CoverageMinimum, rc.CoverageMinimum)
	set(&r.CoverageRecommended, rc.CoverageRecommended)
	set(&r.CoverageWeight, rc.CoverageWeight)
	set(&r.DistributionWeight, rc.DistributionWeight)
	set(&r.DomainCoverageFloor, rc.DomainCoverageFloor)

	for name, bc := range rc.Domains {
		key := taxonomy.DomainKey(strings.ToLower(name))
		if !taxonomy.IsValidDomain(key) {
			return rules.Rules{}, fmt.Errorf("rules.domains: unknown domain %q", name)
		}
		band := r.Distribution[key]
		set(&band.Min, bc.Min)
		set(&band.Max, bc.Max)
		set(&band.Target, bc.Target)
		r.Distribution[key] = band
	}

	if rc.CriticalDomains != nil {
		r.CriticalDomains = make([]taxonomy.DomainKey, 0, len(rc.CriticalDomains))
		for _, name := range rc.CriticalDomains {
			r.CriticalDomains = append(r.CriticalDomains, taxonomy.DomainKey(strings.ToLower(name)))
		}
	}

	if err := r.Validate(); err != nil {
		return rules.Rules{}, fmt.Errorf("invalid rules in config: %w", err)
	}
	return r, nil
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// DefaultYAML renders a config file spelling out every threshold of the
// named profile.
func DefaultYAML(profileName string) ([]byte, error) {
	p, err := profile.Get(profileName)
	if err != nil {
		return nil, err
	}
	def := p.Rules
	cfg := Config{
		TaxonomyPath: taxonomy.DefaultPath,
		Profile:      p.Name,
		Format:       "json",
		Concurrency:  batch.DefaultConcurrency,
		Rules: RulesConfig{
			CoverageMinimum:     ptr(def.CoverageMinimum),
			CoverageRecommended: ptr(def.CoverageRecommended),
			CoverageWeight:      ptr(def.CoverageWeight),
			DistributionWeight:  ptr(def.DistributionWeight),
			DomainCoverageFloor: ptr(def.DomainCoverageFloor),
			Domains:             make(map[string]BandConfig, len(def.Distribution)),
		},
	}
	for key, b := range def.Distribution {
		cfg.Rules.Domains[string(key)] = BandConfig{Min: ptr(b.Min), Max: ptr(b.Max), Target: ptr(b.Target)}
	}
	for _, key := range def.CriticalDomains {
		cfg.Rules.CriticalDomains = append(cfg.Rules.CriticalDomains, string(key))
	}
	return yaml.Marshal(cfg)
}

func ptr(f float64) *float64 { return &f }
