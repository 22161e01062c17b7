package profile

import "github.com/dshills/ecocritic/internal/rules"

func course() *Profile {
	return &Profile{
		Name:        "course",
		Description: "a complete exam-prep course covering the whole outline",
		Rules:       rules.Default(),
	}
}
