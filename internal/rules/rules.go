// Package rules defines the thresholds the validator scores content against.
package rules

import (
	"fmt"

	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Band is the acceptable share of covered tasks for one domain, plus the
// share the outline aims for.
type Band struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Target float64 `json:"target" yaml:"target"`
}

// Contains reports whether f lies inside [Min, Max].
func (b Band) Contains(f float64) bool {
	return f >= b.Min && f <= b.Max
}

// Rules holds every threshold used by coverage, distribution, scoring, and
// recommendation generation.
type Rules struct {
	// CoverageMinimum is also the overall pass bar for the weighted score.
	CoverageMinimum     float64
	CoverageRecommended float64

	Distribution map[taxonomy.DomainKey]Band

	CoverageWeight     float64
	DistributionWeight float64

	// DomainCoverageFloor is the per-domain coverage below which a
	// "add more content" recommendation is emitted.
	DomainCoverageFloor float64

	// CriticalDomains are checked for a complete absence of covered tasks.
	CriticalDomains []taxonomy.DomainKey
}

// Default returns the standard rule set.
func Default() Rules {
	return Rules{
		CoverageMinimum:     0.80,
		CoverageRecommended: 0.95,
		Distribution: map[taxonomy.DomainKey]Band{
			taxonomy.People:   {Min: 0.35, Max: 0.50, Target: 0.42},
			taxonomy.Process:  {Min: 0.40, Max: 0.60, Target: 0.50},
			taxonomy.Business: {Min: 0.05, Max: 0.15, Target: 0.08},
		},
		CoverageWeight:      0.7,
		DistributionWeight:  0.3,
		DomainCoverageFloor: 0.30,
		CriticalDomains:     []taxonomy.DomainKey{taxonomy.People, taxonomy.Process},
	}
}

// Clone returns a deep copy so overrides never touch a shared rule set.
func (r Rules) Clone() Rules {
	out := r
	out.Distribution = make(map[taxonomy.DomainKey]Band, len(r.Distribution))
	for k, v := range r.Distribution {
		out.Distribution[k] = v
	}
	out.CriticalDomains = append([]taxonomy.DomainKey(nil), r.CriticalDomains...)
	return out
}

// Targets returns the per-domain target shares.
func (r Rules) Targets() map[taxonomy.DomainKey]float64 {
	out := make(map[taxonomy.DomainKey]float64, len(r.Distribution))
	for k, b := range r.Distribution {
		out[k] = b.Target
	}
	return out
}

// Validate returns an error if any threshold is out of range or inconsistent.
func (r Rules) Validate() error {
	if err := unit("coverage minimum", r.CoverageMinimum); err != nil {
		return err
	}
	if err := unit("coverage recommended", r.CoverageRecommended); err != nil {
		return err
	}
	if r.CoverageMinimum > r.CoverageRecommended {
		return fmt.Errorf("coverage minimum %g exceeds recommended %g", r.CoverageMinimum, r.CoverageRecommended)
	}
	if err := unit("domain coverage floor", r.DomainCoverageFloor); err != nil {
		return err
	}
	if r.CoverageWeight < 0 || r.DistributionWeight < 0 {
		return fmt.Errorf("score weights must be non-negative")
	}
	for _, key := range taxonomy.DomainOrder {
		b, ok := r.Distribution[key]
		if !ok {
			return fmt.Errorf("no distribution band for domain %q", key)
		}
		for _, v := range []float64{b.Min, b.Max, b.Target} {
			if err := unit(string(key)+" band", v); err != nil {
				return err
			}
		}
		if b.Min > b.Max {
			return fmt.Errorf("%s band: min %g exceeds max %g", key, b.Min, b.Max)
		}
	}
	for _, key := range r.CriticalDomains {
		if !taxonomy.IsValidDomain(key) {
			return fmt.Errorf("unknown critical domain %q", key)
		}
	}
	return nil
}

func unit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %g must be between 0 and 1", name, v)
	}
	return nil
}
