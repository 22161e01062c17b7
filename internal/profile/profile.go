package profile

import (
	"fmt"
	"strings"

	"github.com/dshills/ecocritic/internal/rules"
)

// Default is the profile used when none is named.
const Default = "course"

// Profile is a named rule preset sized for a kind of content.
type Profile struct {
	Name        string
	Description string
	Rules       rules.Rules
}

// Names lists the built-in profiles in display order.
var Names = []string{"course", "module", "lesson", "strict"}

// Get returns the built-in profile for the given name.
func Get(name string) (*Profile, error) {
	switch strings.ToLower(name) {
	case "course", "":
		return course(), nil
	case "module":
		return module(), nil
	case "lesson":
		return lesson(), nil
	case "strict":
		return strict(), nil
	default:
		return nil, fmt.Errorf("unknown profile %q: valid profiles are %s", name, strings.Join(Names, ", "))
	}
}

// Summary returns a one-line description of the profile's thresholds.
func (p *Profile) Summary() string {
	return fmt.Sprintf("%s: %s (pass at %.0f%%, recommended coverage %.0f%%)",
		p.Name, p.Description, p.Rules.CoverageMinimum*100, p.Rules.CoverageRecommended*100)
}
