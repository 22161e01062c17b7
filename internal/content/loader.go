// Package content loads authored material from disk into schema.Content.
package content

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/ecocritic/internal/schema"
)

// Options controls how files are interpreted.
type Options struct {
	// Select is a gjson path picking the content object out of a larger JSON
	// document, e.g. "videos.2" or "lesson". Ignored for non-JSON files.
	Select string
}

// Document is a loaded content file with derived metadata.
type Document struct {
	Path    string
	Hash    string // "sha256:<hex>" of the raw file
	Content *schema.Content
}

// Load reads path and converts it to Content based on its extension:
// .json is read field by field, .md/.markdown split into heading and body,
// .txt used verbatim as the content body.
func Load(path string, opts Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}

	var c *schema.Content
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		c, err = ParseJSON(data, opts.Select)
	case ".md", ".markdown":
		c = ParseMarkdown(string(data))
	case ".txt":
		c = &schema.Content{Type: "text", Content: string(data)}
	default:
		return nil, fmt.Errorf("unsupported content file type %q (want .json, .md, .markdown, or .txt)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	sum := sha256.Sum256(data)
	return &Document{
		Path:    path,
		Hash:    fmt.Sprintf("sha256:%x", sum),
		Content: c,
	}, nil
}

// ParseJSON reads a content object. Field names from the authoring pipeline
// (camelCase) and snake_case are both accepted. Objectives and key points may
// be a list of strings or a single string.
func ParseJSON(data []byte, sel string) (*schema.Content, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if sel != "" {
		doc = doc.Get(sel)
		if !doc.Exists() {
			return nil, fmt.Errorf("select path %q matched nothing", sel)
		}
	}
	if !doc.IsObject() {
		return nil, errors.New("content must be a JSON object")
	}

	return &schema.Content{
		ID:          firstString(doc, "id", "contentId", "content_id"),
		Type:        firstString(doc, "type", "contentType", "content_type"),
		Title:       firstString(doc, "title"),
		Description: firstString(doc, "description"),
		Content:     firstString(doc, "content", "body"),
		Script:      firstString(doc, "script", "transcript"),
		Objectives:  stringList(doc, "objectives"),
		KeyPoints:   stringList(doc, "keyPoints", "key_points"),
	}, nil
}

// ParseMarkdown uses the first level-one heading as the title and the rest
// of the document as the content body.
func ParseMarkdown(text string) *schema.Content {
	c := &schema.Content{Type: "markdown"}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		if c.Title == "" && strings.HasPrefix(line, "# ") {
			c.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			continue
		}
		body = append(body, line)
	}
	c.Content = strings.TrimSpace(strings.Join(body, "\n"))
	return c
}

func firstString(doc gjson.Result, keys ...string) string {
	for _, k := range keys {
		if r := doc.Get(k); r.Exists() && r.Type != gjson.Null {
			return r.String()
		}
	}
	return ""
}

func stringList(doc gjson.Result, keys ...string) []string {
	for _, k := range keys {
		r := doc.Get(k)
		if !r.Exists() || r.Type == gjson.Null {
			continue
		}
		if !r.IsArray() {
			return []string{r.String()}
		}
		var out []string
		for _, item := range r.Array() {
			if item.Type == gjson.Null {
				continue
			}
			out = append(out, item.String())
		}
		return out
	}
	return nil
}
