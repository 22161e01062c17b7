package taxonomy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where a replacement outline is looked for when no explicit
// path is configured.
const DefaultPath = "config/eco-tasks.json"

// File is the on-disk shape of a replacement outline.
type File struct {
	Version string   `json:"version" yaml:"version"`
	Domains []Domain `json:"domains" yaml:"domains"`
}

// Load reads an outline from path. Files ending in .yaml or .yml are parsed
// as YAML; anything else as JSON.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing taxonomy YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing taxonomy JSON: %w", err)
		}
	}

	t, err := New(f.Version, f.Domains)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", path, err)
	}
	t.source = path
	return t, nil
}

// LoadOrDefault loads the outline at path and falls back to Default when the
// file is missing, unreadable, or invalid. Fallback is normal operation, so
// it is logged rather than returned. An empty path means DefaultPath.
func LoadOrDefault(path string, logger *slog.Logger) *Taxonomy {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		path = DefaultPath
	}

	t, err := Load(path)
	if err == nil {
		logger.Debug("loaded taxonomy", "path", path, "tasks", t.TaskCount())
		return t
	}

	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("taxonomy file not found, using built-in outline", "path", path)
	} else {
		logger.Warn("taxonomy file unusable, using built-in outline", "path", path, "error", err)
	}
	return Default()
}

// Marshal encodes t in the File shape, as YAML when asYAML is set and as
// indented JSON otherwise.
func Marshal(t *Taxonomy, asYAML bool) ([]byte, error) {
	f := File{Version: t.Version(), Domains: t.Domains()}
	if asYAML {
		return yaml.Marshal(f)
	}
	return json.MarshalIndent(f, "", "  ")
}
