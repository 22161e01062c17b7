package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/ecocritic/internal/taxonomy"
)

func TestContentText_JoinsPresentFields(t *testing.T) {
	c := &Content{
		Title:      "Risk Basics",
		Script:     "Today we cover T13.",
		Objectives: []string{"Identify risks", "Rank risks"},
		KeyPoints:  []string{"Use a register"},
	}
	got := c.Text()
	want := "Risk Basics Today we cover T13. Identify risks Rank risks Use a register"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestContentText_Empty(t *testing.T) {
	if got := (&Content{ID: "x"}).Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestContentText_PreservesCase(t *testing.T) {
	c := &Content{Title: "T1 Conflict"}
	if !strings.Contains(c.Text(), "T1") {
		t.Errorf("Text() lowered the task ID: %q", c.Text())
	}
}

func TestExtractedTasks_AddDedupsAcrossDomains(t *testing.T) {
	e := NewExtractedTasks()
	if !e.Add(taxonomy.People, "T1") {
		t.Fatal("first Add returned false")
	}
	if e.Add(taxonomy.People, "T1") {
		t.Error("duplicate Add in same domain returned true")
	}
	if e.Add(taxonomy.Process, "T1") {
		t.Error("duplicate Add in other domain returned true")
	}
	e.Add(taxonomy.Process, "T13")

	if e.Total() != 2 {
		t.Errorf("Total = %d, want 2", e.Total())
	}
	if e.Count(taxonomy.Business) != 0 {
		t.Errorf("Count(business) = %d, want 0", e.Count(taxonomy.Business))
	}
}

func TestExtractedTasks_EmptyMarshalsAsArrays(t *testing.T) {
	out, err := json.Marshal(NewExtractedTasks())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"business":[],"people":[],"process":[]}`
	if string(out) != want {
		t.Errorf("json = %s, want %s", out, want)
	}
}
