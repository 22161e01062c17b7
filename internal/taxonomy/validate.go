package taxonomy

import (
	"fmt"
	"regexp"
)

var taskIDPattern = regexp.MustCompile(`^T\d+$`)

// Validate checks the structure of a domain list: all three domains present
// exactly once, every task ID well formed and unique across the outline.
func Validate(domains []Domain) error {
	seenDomain := make(map[DomainKey]bool, len(domains))
	seenTask := make(map[string]DomainKey)

	for i, d := range domains {
		prefix := fmt.Sprintf("domain[%d]", i)
		if !IsValidDomain(d.Key) {
			return fmt.Errorf("%s: unknown domain key %q (must be people, process, or business)", prefix, d.Key)
		}
		if seenDomain[d.Key] {
			return fmt.Errorf("%s: duplicate domain %q", prefix, d.Key)
		}
		seenDomain[d.Key] = true

		if d.TargetPercentage < 0 || d.TargetPercentage > 1 {
			return fmt.Errorf("%s: target_percentage %g must be between 0 and 1", prefix, d.TargetPercentage)
		}
		if len(d.Tasks) == 0 {
			return fmt.Errorf("%s: domain %q has no tasks", prefix, d.Key)
		}
		for j, task := range d.Tasks {
			if err := validateTask(task, fmt.Sprintf("%s.tasks[%d]", prefix, j)); err != nil {
				return err
			}
			if other, dup := seenTask[task.ID]; dup {
				return fmt.Errorf("%s.tasks[%d]: task %s already declared in domain %q", prefix, j, task.ID, other)
			}
			seenTask[task.ID] = d.Key
		}
	}

	for _, key := range DomainOrder {
		if !seenDomain[key] {
			return fmt.Errorf("missing domain %q", key)
		}
	}
	return nil
}

func validateTask(task Task, prefix string) error {
	if !taskIDPattern.MatchString(task.ID) {
		return fmt.Errorf("%s: id %q does not match T<n> format", prefix, task.ID)
	}
	if task.Title == "" {
		return fmt.Errorf("%s: title is required", prefix)
	}
	return nil
}
