// Package taxonomy holds the exam content outline: three domains, each with an
// ordered list of tasks and their enablers.
package taxonomy

import "fmt"

// DomainKey identifies one of the three outline domains.
type DomainKey string

const (
	People   DomainKey = "people"
	Process  DomainKey = "process"
	Business DomainKey = "business"
)

// DomainOrder is the declaration order used for every domain iteration.
var DomainOrder = []DomainKey{People, Process, Business}

// IsValidDomain reports whether k is one of the three known domains.
func IsValidDomain(k DomainKey) bool {
	switch k {
	case People, Process, Business:
		return true
	}
	return false
}

// Task is a single outline task.
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Enablers    []string `json:"enablers" yaml:"enablers"`
}

// Domain groups tasks under a weighted exam domain.
type Domain struct {
	Key              DomainKey `json:"key" yaml:"key"`
	Name             string    `json:"name" yaml:"name"`
	TargetPercentage float64   `json:"target_percentage" yaml:"target_percentage"`
	Tasks            []Task    `json:"tasks" yaml:"tasks"`
}

// DomainTask is a task annotated with the domain that contains it.
type DomainTask struct {
	Task
	Domain DomainKey `json:"domain"`
}

// Taxonomy is the immutable domain/task tree. Build one with New; the zero
// value is not usable.
type Taxonomy struct {
	version string
	domains []Domain
	byKey   map[DomainKey]int
	byID    map[string]DomainKey
	source  string
}

// New validates domains and builds the lookup indexes. The slices are
// copied so later changes by the caller do not leak in.
func New(version string, domains []Domain) (*Taxonomy, error) {
	if err := Validate(domains); err != nil {
		return nil, err
	}
	t := &Taxonomy{
		version: version,
		domains: make([]Domain, 0, len(domains)),
		byKey:   make(map[DomainKey]int, len(domains)),
		byID:    make(map[string]DomainKey),
		source:  "builtin",
	}
	// Store in canonical order regardless of file order.
	for _, key := range DomainOrder {
		for _, d := range domains {
			if d.Key != key {
				continue
			}
			cp := d
			cp.Tasks = make([]Task, len(d.Tasks))
			for i, task := range d.Tasks {
				task.Enablers = append([]string(nil), task.Enablers...)
				cp.Tasks[i] = task
				t.byID[task.ID] = d.Key
			}
			t.byKey[d.Key] = len(t.domains)
			t.domains = append(t.domains, cp)
		}
	}
	return t, nil
}

// Version returns the outline version label.
func (t *Taxonomy) Version() string { return t.version }

// Source returns "builtin" or the file path the taxonomy was loaded from.
func (t *Taxonomy) Source() string { return t.source }

// Domains returns the domains in declaration order. Callers must not modify
// the returned tasks.
func (t *Taxonomy) Domains() []Domain { return t.domains }

// Domain returns the domain for key.
func (t *Taxonomy) Domain(key DomainKey) (Domain, bool) {
	i, ok := t.byKey[key]
	if !ok {
		return Domain{}, false
	}
	return t.domains[i], true
}

// DomainName returns the display name for key, falling back to the key itself.
func (t *Taxonomy) DomainName(key DomainKey) string {
	if d, ok := t.Domain(key); ok && d.Name != "" {
		return d.Name
	}
	return string(key)
}

// DomainOf returns the domain that contains task id.
func (t *Taxonomy) DomainOf(id string) (DomainKey, bool) {
	k, ok := t.byID[id]
	return k, ok
}

// TaskCount returns the number of tasks in the whole outline.
func (t *Taxonomy) TaskCount() int { return len(t.byID) }

// DomainTaskCount returns the number of tasks declared in one domain.
func (t *Taxonomy) DomainTaskCount(key DomainKey) int {
	d, ok := t.Domain(key)
	if !ok {
		return 0
	}
	return len(d.Tasks)
}

// Task looks up a task by ID.
func (t *Taxonomy) Task(id string) (DomainTask, bool) {
	key, ok := t.byID[id]
	if !ok {
		return DomainTask{}, false
	}
	d := t.domains[t.byKey[key]]
	for _, task := range d.Tasks {
		if task.ID == id {
			return DomainTask{Task: task, Domain: key}, true
		}
	}
	return DomainTask{}, false
}

// AllTasks returns every task in domain order, then declaration order.
func (t *Taxonomy) AllTasks() []DomainTask {
	out := make([]DomainTask, 0, len(t.byID))
	for _, d := range t.domains {
		for _, task := range d.Tasks {
			out = append(out, DomainTask{Task: task, Domain: d.Key})
		}
	}
	return out
}

func (t *Taxonomy) String() string {
	return fmt.Sprintf("taxonomy %s (%d tasks, %s)", t.version, t.TaskCount(), t.source)
}
