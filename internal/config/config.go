// Package config loads the optional wasmc.toml project file that supplies
// build defaults (word size, memory pages, entry/declarations paths) in
// place of repeating CLI flags on every invocation. Grounded on the
// teacher's cmd/surge/project_manifest.go (surge.toml: upward directory
// search, BurntSushi/toml decode, required-field validation via
// toml.MetaData.IsDefined).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Project is the decoded shape of wasmc.toml.
type Project struct {
	WordSize     uint8  `toml:"word-size"`
	MemoryPages  uint32 `toml:"memory-pages"`
	Entry        string `toml:"entry"`
	Declarations string `toml:"declarations"`

	// Dir is the directory containing the manifest; Entry/Declarations
	// are resolved relative to it, not to the process's working
	// directory.
	Dir string
}

// Find searches startDir and its ancestors for a wasmc.toml file, the same
// upward-walk the teacher's findSurgeToml uses for surge.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "wasmc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes and validates the manifest at path. WordSize and
// MemoryPages are optional (0 means "use the CLI/driver default"); Entry
// is required.
func Load(path string) (*Project, error) {
	var p Project
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("entry") || strings.TrimSpace(p.Entry) == "" {
		return nil, fmt.Errorf("%s: missing required key \"entry\"", path)
	}
	if p.WordSize != 0 && p.WordSize != 4 && p.WordSize != 8 {
		return nil, fmt.Errorf("%s: word-size must be 4 or 8, got %d", path, p.WordSize)
	}
	p.Dir = filepath.Dir(path)
	return &p, nil
}

// ResolvePath joins a manifest-relative path (Entry or Declarations)
// against the manifest's directory.
func (p *Project) ResolvePath(rel string) string {
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Dir, filepath.FromSlash(rel))
}
