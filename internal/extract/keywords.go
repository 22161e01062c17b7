package extract

import "github.com/dshills/ecocritic/internal/taxonomy"

// KeywordEntry lists the lowercase phrases that identify one task.
type KeywordEntry struct {
	TaskID   string
	Keywords []string
}

// KeywordGroup holds the entries for one domain, in task declaration order.
type KeywordGroup struct {
	Domain  taxonomy.DomainKey
	Entries []KeywordEntry
}

// Table is the keyword-to-task mapping used by the keyword pass.
type Table []KeywordGroup

// DefaultKeywords is the built-in table. It is independent of the loaded
// taxonomy: replacing the outline does not replace these phrases.
//
// Phrases are matched as plain substrings, so none may be a substring of a
// phrase belonging to another task ("agreement" would fire on "disagreement").
var DefaultKeywords = Table{
	{
		Domain: taxonomy.People,
		Entries: []KeywordEntry{
			{"T1", []string{"conflict", "resolution", "dispute", "disagreement"}},
			{"T2", []string{"leadership", "servant leader", "team vision", "lead the team"}},
			{"T3", []string{"team performance", "key performance indicator", "kpi", "performance feedback"}},
			{"T4", []string{"empower", "self-organizing", "delegation", "decision-making authority"}},
			{"T5", []string{"training", "coaching", "mentoring", "competency"}},
			{"T6", []string{"team building", "team formation", "onboarding", "team skills"}},
			{"T7", []string{"impediment", "obstacle", "blocker", "roadblock"}},
			{"T8", []string{"negotiation", "negotiate", "contract terms", "win-win"}},
			{"T9", []string{"collaboration", "partnership", "stakeholder needs", "stakeholder expectations"}},
			{"T10", []string{"emotional intelligence", "empathy", "virtual team", "remote team"}},
		},
	},
	{
		Domain: taxonomy.Process,
		Entries: []KeywordEntry{
			{"T11", []string{"business value", "incremental delivery", "minimum viable product", "mvp"}},
			{"T12", []string{"communication", "status report", "information radiator"}},
			{"T13", []string{"risk", "risk management", "risk register", "mitigation"}},
			{"T14", []string{"stakeholder engagement", "stakeholder analysis", "stakeholder register", "power interest grid"}},
			{"T15", []string{"budget", "cost baseline", "earned value", "resource allocation"}},
			{"T16", []string{"schedule", "critical path", "milestone", "gantt"}},
			{"T17", []string{"quality", "acceptance criteria", "definition of done", "defect"}},
			{"T18", []string{"scope", "requirements", "work breakdown structure", "wbs", "backlog"}},
			{"T19", []string{"integration", "project plan", "planning activities", "consolidated plan"}},
			{"T20", []string{"change control", "change request", "change management"}},
			{"T21", []string{"procurement", "vendor", "supplier", "make-or-buy"}},
			{"T22", []string{"artifact", "configuration management", "version control", "project documentation"}},
			{"T23", []string{"methodology", "agile", "hybrid", "predictive", "waterfall"}},
		},
	},
	{
		Domain: taxonomy.Business,
		Entries: []KeywordEntry{
			{"T24", []string{"compliance", "regulation", "regulatory", "audit"}},
			{"T25", []string{"benefits realization", "benefit", "return on investment", "value realization"}},
			{"T26", []string{"external environment", "market conditions", "business environment", "pestle"}},
			{"T27", []string{"organizational change", "organizational culture", "change readiness", "adoption"}},
		},
	},
}
