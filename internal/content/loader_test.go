package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempContent(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_JSONCamelCase(t *testing.T) {
	path := writeTempContent(t, "lesson.json", `{
  "id": "lesson-7",
  "type": "lesson",
  "title": "Handling conflict",
  "content": "Body text",
  "objectives": ["one", "two"],
  "keyPoints": ["kp"]
}`)

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := doc.Content
	if c.ID != "lesson-7" || c.Type != "lesson" || c.Title != "Handling conflict" {
		t.Errorf("unexpected header fields: %+v", c)
	}
	if len(c.Objectives) != 2 || c.Objectives[1] != "two" {
		t.Errorf("Objectives = %v", c.Objectives)
	}
	if len(c.KeyPoints) != 1 || c.KeyPoints[0] != "kp" {
		t.Errorf("KeyPoints = %v", c.KeyPoints)
	}
	if !strings.HasPrefix(doc.Hash, "sha256:") {
		t.Errorf("hash missing sha256 prefix: %q", doc.Hash)
	}
}

func TestLoad_JSONSnakeCaseAndScalars(t *testing.T) {
	path := writeTempContent(t, "x.json", `{"content_id": 42, "key_points": "single", "objectives": null, "transcript": "spoken words"}`)

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := doc.Content
	if c.ID != "42" {
		t.Errorf("ID = %q, want 42", c.ID)
	}
	if len(c.KeyPoints) != 1 || c.KeyPoints[0] != "single" {
		t.Errorf("KeyPoints = %v", c.KeyPoints)
	}
	if c.Objectives != nil {
		t.Errorf("Objectives = %v, want nil", c.Objectives)
	}
	if c.Script != "spoken words" {
		t.Errorf("Script = %q", c.Script)
	}
}

func TestLoad_JSONSelect(t *testing.T) {
	path := writeTempContent(t, "channel.json", `{"videos": [{"id": "v1", "title": "first"}, {"id": "v2", "title": "second"}]}`)

	doc, err := Load(path, Options{Select: "videos.1"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content.ID != "v2" || doc.Content.Title != "second" {
		t.Errorf("selected wrong object: %+v", doc.Content)
	}

	if _, err := Load(path, Options{Select: "videos.9"}); err == nil {
		t.Error("expected error for select path with no match")
	}
}

func TestLoad_JSONNotObject(t *testing.T) {
	path := writeTempContent(t, "arr.json", `["a", "b"]`)
	if _, err := Load(path, Options{}); err == nil {
		t.Error("expected error for top-level array")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeTempContent(t, "bad.json", `{not json}`)
	if _, err := Load(path, Options{}); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoad_MarkdownHeading(t *testing.T) {
	path := writeTempContent(t, "risk-101.md", "# Risk Basics\n\nIdentify risks early.\n\n## Details\nUse a register.\n")

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := doc.Content
	if c.Title != "Risk Basics" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.ID != "risk-101" {
		t.Errorf("ID = %q, want file stem", c.ID)
	}
	if c.Type != "markdown" {
		t.Errorf("Type = %q", c.Type)
	}
	if strings.Contains(c.Content, "# Risk Basics") {
		t.Errorf("title left in body: %q", c.Content)
	}
	if !strings.Contains(c.Content, "## Details") {
		t.Errorf("subheading dropped from body: %q", c.Content)
	}
}

func TestLoad_PlainText(t *testing.T) {
	path := writeTempContent(t, "notes.txt", "T5 training plan")
	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content.Content != "T5 training plan" || doc.Content.Type != "text" {
		t.Errorf("unexpected content: %+v", doc.Content)
	}
}

func TestLoad_HashStable(t *testing.T) {
	path := writeTempContent(t, "a.txt", "hello")
	d1, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Load(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d1.Hash != d2.Hash {
		t.Errorf("hash not stable: %q vs %q", d1.Hash, d2.Hash)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTempContent(t, "slides.pdf", "%PDF")
	if _, err := Load(path, Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/content.json", Options{}); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_MarkdownVeryLongLine(t *testing.T) {
	long := strings.Repeat("a", 2*1024*1024)
	path := writeTempContent(t, "transcript.md", "# Title\nintro line\n"+long+"\nrisk management and T24 audit\n")

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := doc.Content
	if c.Title != "Title" {
		t.Errorf("Title = %q", c.Title)
	}
	if !strings.Contains(c.Content, long) {
		t.Errorf("long line dropped: content length %d", len(c.Content))
	}
	if !strings.HasSuffix(c.Content, "risk management and T24 audit") {
		t.Errorf("text after long line dropped: %q", c.Content[len(c.Content)-40:])
	}
}

func TestParseMarkdown_CRLF(t *testing.T) {
	c := ParseMarkdown("# Budget\r\nLine one\r\nLine two\r\n")
	if c.Title != "Budget" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Content != "Line one\nLine two" {
		t.Errorf("Content = %q", c.Content)
	}
}
