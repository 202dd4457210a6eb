package driver

import (
	"context"
	"strings"
	"testing"

	"wasmc/internal/source"
)

func TestCompileAddFunctionFromSource(t *testing.T) {
	fs := source.NewFileSet()
	entry := fs.AddVirtual("add.wc", []byte(
		"export function add(a: int, b: int): int { return a + b; }\n"))

	res, err := Compile(context.Background(), fs, entry, nil, Options{WordSize: 4})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	out, err := res.Module.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(string(out), "\x00asm") {
		t.Fatalf("missing wasm header")
	}
}

func TestCompileWithDeclarationsFile(t *testing.T) {
	fs := source.NewFileSet()
	decl := fs.AddVirtual("env.wc", []byte(
		"declare function log(x: double): void;\n"))
	entry := fs.AddVirtual("main.wc", []byte(
		"export function report(): void { return; }\n"))

	// The declarations file registers an import in pass 1 but contributes
	// no body; pass 2 only walks the entry file (§2).
	res, err := Compile(context.Background(), fs, entry, []source.FileID{decl}, Options{WordSize: 4})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	wat := res.Module.WAT()
	if !strings.Contains(wat, `"env" "log"`) {
		t.Fatalf("expected the declarations file's import to be registered, got:\n%s", wat)
	}
}

func TestCompileRejectsBadWordSize(t *testing.T) {
	fs := source.NewFileSet()
	entry := fs.AddVirtual("empty.wc", []byte(""))
	_, err := Compile(context.Background(), fs, entry, nil, Options{WordSize: 3})
	if err == nil {
		t.Fatal("expected an error for an unsupported word size")
	}
}

func TestCompileStartFunction(t *testing.T) {
	fs := source.NewFileSet()
	entry := fs.AddVirtual("start.wc", []byte(
		"function start(): void { return; }\n"))

	res, err := Compile(context.Background(), fs, entry, nil, Options{WordSize: 8})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	wat := res.Module.WAT()
	if !strings.Contains(wat, "(start $start)") {
		t.Fatalf("expected start function, got:\n%s", wat)
	}
}
