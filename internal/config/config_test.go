package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "wasmc.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
entry = "src/main.wc"
declarations = "src/env.wc"
word-size = 8
memory-pages = 64
`)

	p, err := Load(filepath.Join(dir, "wasmc.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if p.WordSize != 8 || p.MemoryPages != 64 {
		t.Fatalf("unexpected values: %+v", p)
	}
	if got := p.ResolvePath(p.Entry); got != filepath.Join(dir, "src", "main.wc") {
		t.Fatalf("ResolvePath(entry) = %q", got)
	}
}

func TestLoadMissingEntryIsError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `word-size = 4`)

	if _, err := Load(filepath.Join(dir, "wasmc.toml")); err == nil {
		t.Fatal("expected an error for a manifest missing entry")
	}
}

func TestLoadBadWordSizeIsError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
entry = "main.wc"
word-size = 16
`)

	if _, err := Load(filepath.Join(dir, "wasmc.toml")); err == nil {
		t.Fatal("expected an error for an unsupported word size")
	}
}

func TestFindWalksUpToAncestor(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `entry = "main.wc"`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, found, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find the manifest in an ancestor directory")
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found manifest at %q, want under %q", path, root)
	}
}

func TestFindReportsNotFound(t *testing.T) {
	_, found, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected no manifest to be found")
	}
}
