package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ecocritic/internal/content"
	"github.com/dshills/ecocritic/internal/taxonomy"
	"github.com/dshills/ecocritic/internal/validator"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 12; i++ {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("c%02d.txt", i), fmt.Sprintf("T%d", i+1)))
	}

	r := NewRunner(validator.New(), WithConcurrency(5))
	report, err := r.Run(context.Background(), paths)
	require.NoError(t, err)

	require.Len(t, report.Items, 12)
	for i, item := range report.Items {
		assert.Equal(t, paths[i], item.Path)
		require.NotNil(t, item.Result)
		assert.Equal(t, fmt.Sprintf("c%02d", i), item.Result.ContentID)
	}
	assert.Equal(t, 12, report.Summary.Total)
	assert.Equal(t, 0, report.Summary.LoadErrors)
	assert.Len(t, report.Summary.CoveredTasks[taxonomy.People], 10)
	assert.Equal(t, []string{"T11", "T12"}, report.Summary.CoveredTasks[taxonomy.Process])
	assert.NotEmpty(t, report.Summary.RunID)
}

func TestRun_LoadErrorsDoNotAbort(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"id":"g","content":"`+allIDs()+`"}`)
	missing := filepath.Join(dir, "missing.json")
	bad := writeFile(t, dir, "bad.json", `{oops`)

	report, err := NewRunner(validator.New()).Run(context.Background(), []string{good, missing, bad})
	require.NoError(t, err)

	s := report.Summary
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Valid)
	assert.Equal(t, 0, s.Invalid)
	assert.Equal(t, 2, s.LoadErrors)
	assert.InDelta(t, 1.0, s.MeanScore, 1e-9)

	assert.Nil(t, report.Items[1].Result)
	assert.Contains(t, report.Items[1].Error, "reading content file")
	assert.NotEmpty(t, report.Items[2].Error)
	assert.Equal(t, "g", report.Items[0].Result.ContentID)
	assert.NotEmpty(t, report.Items[0].Hash)
}

func TestRun_SelectOption(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wrapped.json", `{"data":{"lesson":{"id":"inner","title":"risk"}}}`)

	r := NewRunner(validator.New(), WithLoadOptions(content.Options{Select: "data.lesson"}))
	report, err := r.Run(context.Background(), []string{path})
	require.NoError(t, err)
	require.NotNil(t, report.Items[0].Result)
	assert.Equal(t, "inner", report.Items[0].Result.ContentID)
	assert.Equal(t, []string{"T13"}, report.Items[0].Result.Details.ExtractedTasks[taxonomy.Process])
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "risk")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(validator.New()).Run(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpand_DoubleStar(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a/one.json", "{}")
	b := writeFile(t, dir, "a/b/two.json", "{}")
	writeFile(t, dir, "a/b/skip.md", "x")

	got, err := Expand([]string{filepath.Join(dir, "**", "*.json")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, got)
}

func TestExpand_PlainPathsAndDedup(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x")
	missing := filepath.Join(dir, "nope.txt")

	got, err := Expand([]string{a, missing, filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{a, missing}, got)
}

func TestExpand_InvalidPattern(t *testing.T) {
	_, err := Expand([]string{"content/[.json"})
	assert.Error(t, err)
}

func TestSortTaskIDs_Numeric(t *testing.T) {
	ids := []string{"T10", "T2", "T1", "T27", "T3"}
	sortTaskIDs(ids)
	assert.Equal(t, []string{"T1", "T2", "T3", "T10", "T27"}, ids)
}

func allIDs() string {
	s := ""
	for n := 1; n <= 27; n++ {
		s += fmt.Sprintf("T%d ", n)
	}
	return s
}
