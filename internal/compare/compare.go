// Package compare reports how a validation result changed between two runs.
package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/tidwall/gjson"

	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// Delta is the difference between two results for the same content.
type Delta struct {
	Before        string                         `json:"before"`
	After         string                         `json:"after"`
	ScoreDelta    float64                        `json:"score_delta"`
	CoverageDelta float64                        `json:"coverage_delta"`
	WasValid      bool                           `json:"was_valid"`
	IsValid       bool                           `json:"is_valid"`
	ShareDelta    map[taxonomy.DomainKey]float64 `json:"share_delta"`
	Gained        []string                       `json:"gained"`
	Lost          []string                       `json:"lost"`
	Diff          string                         `json:"diff,omitempty"`
}

// LoadResult reads a validation result from path. The file may hold a bare
// result or a report written by "ecocritic validate --format json", in which
// case the first item's result is used.
func LoadResult(path string) (*schema.ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", path)
	}
	raw := data
	if items := gjson.GetBytes(data, "items"); items.IsArray() {
		first := items.Get("0.result")
		if !first.IsObject() {
			return nil, fmt.Errorf("%s: report has no validated items", path)
		}
		raw = []byte(first.Raw)
	}
	var res schema.ValidationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &res, nil
}

// Compare computes the delta from before to after.
func Compare(before, after *schema.ValidationResult) (*Delta, error) {
	if before == nil || after == nil {
		return nil, fmt.Errorf("compare: both results are required")
	}
	d := &Delta{
		Before:        before.ContentID,
		After:         after.ContentID,
		ScoreDelta:    after.Score - before.Score,
		CoverageDelta: after.Coverage.CoveragePercentage - before.Coverage.CoveragePercentage,
		WasValid:      before.IsValid,
		IsValid:       after.IsValid,
		ShareDelta:    make(map[taxonomy.DomainKey]float64, len(taxonomy.DomainOrder)),
	}
	for _, key := range taxonomy.DomainOrder {
		d.ShareDelta[key] = after.Distribution.Distributions[key] - before.Distribution.Distributions[key]
	}

	was := taskSet(before.Details.ExtractedTasks)
	now := taskSet(after.Details.ExtractedTasks)
	d.Gained = difference(now, was)
	d.Lost = difference(was, now)

	diff, err := lineDiff(before, after)
	if err != nil {
		return nil, err
	}
	d.Diff = diff
	return d, nil
}

// Format writes a human-readable summary of d to w.
func Format(w io.Writer, d *Delta) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s\n", d.Before, d.After)
	fmt.Fprintf(&b, "score     %+.1f%%\n", d.ScoreDelta*100)
	fmt.Fprintf(&b, "coverage  %+.1f%%\n", d.CoverageDelta*100)
	for _, key := range taxonomy.DomainOrder {
		fmt.Fprintf(&b, "%-9s %+.1f%%\n", key, d.ShareDelta[key]*100)
	}
	switch {
	case !d.WasValid && d.IsValid:
		b.WriteString("validity  now valid\n")
	case d.WasValid && !d.IsValid:
		b.WriteString("validity  no longer valid\n")
	}
	if len(d.Gained) > 0 {
		fmt.Fprintf(&b, "gained    %s\n", strings.Join(d.Gained, ", "))
	}
	if len(d.Lost) > 0 {
		fmt.Fprintf(&b, "lost      %s\n", strings.Join(d.Lost, ", "))
	}
	if d.Diff != "" {
		b.WriteString("\n")
		b.WriteString(d.Diff)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// lineDiff renders the changed lines between the indented JSON forms of a
// and b, prefixed "- " and "+ ".
func lineDiff(a, b *schema.ValidationResult) (string, error) {
	left, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	right, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(string(left)+"\n", string(right)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out strings.Builder
	for _, df := range diffs {
		var prefix string
		switch df.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(df.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String(), nil
}

func taskSet(e schema.ExtractedTasks) map[string]bool {
	set := make(map[string]bool)
	for _, ids := range e {
		for _, id := range ids {
			set[id] = true
		}
	}
	return set
}

// difference returns the IDs in a but not in b, in numeric order.
func difference(a, b map[string]bool) []string {
	out := []string{}
	for id := range a {
		if !b[id] {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
