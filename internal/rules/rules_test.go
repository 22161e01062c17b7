package rules

import (
	"testing"

	"github.com/dshills/ecocritic/internal/taxonomy"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
}

func TestDefault_Targets(t *testing.T) {
	targets := Default().Targets()
	want := map[taxonomy.DomainKey]float64{
		taxonomy.People:   0.42,
		taxonomy.Process:  0.50,
		taxonomy.Business: 0.08,
	}
	for k, v := range want {
		if targets[k] != v {
			t.Errorf("target[%s] = %g, want %g", k, targets[k], v)
		}
	}
}

func TestBand_ContainsInclusive(t *testing.T) {
	b := Band{Min: 0.35, Max: 0.50}
	if !b.Contains(0.35) || !b.Contains(0.50) {
		t.Error("band bounds must be inclusive")
	}
	if b.Contains(0.34) || b.Contains(0.51) {
		t.Error("values outside band reported as contained")
	}
}

func TestClone_Independent(t *testing.T) {
	base := Default()
	c := base.Clone()
	c.Distribution[taxonomy.People] = Band{Min: 0, Max: 1, Target: 0.5}
	c.CriticalDomains[0] = taxonomy.Business

	if base.Distribution[taxonomy.People].Min != 0.35 {
		t.Error("clone shares distribution map with original")
	}
	if base.CriticalDomains[0] != taxonomy.People {
		t.Error("clone shares critical domains with original")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Rules){
		"minimum above recommended": func(r *Rules) { r.CoverageMinimum = 0.99 },
		"out of range":              func(r *Rules) { r.CoverageRecommended = 1.2 },
		"inverted band": func(r *Rules) {
			r.Distribution[taxonomy.Process] = Band{Min: 0.6, Max: 0.4, Target: 0.5}
		},
		"missing band":     func(r *Rules) { delete(r.Distribution, taxonomy.Business) },
		"negative weight":  func(r *Rules) { r.CoverageWeight = -1 },
		"unknown critical": func(r *Rules) { r.CriticalDomains = []taxonomy.DomainKey{"ops"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := Default().Clone()
			mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
