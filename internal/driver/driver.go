package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"wasmc/internal/ast"
	"wasmc/internal/compile"
	"wasmc/internal/diag"
	"wasmc/internal/lexer"
	"wasmc/internal/parser"
	"wasmc/internal/source"
	"wasmc/internal/wasmgen"
)

// defaultMemoryPages matches §6: 256 pages (16 MiB), no maximum.
const defaultMemoryPages = 256

// Options configures one Compile call.
type Options struct {
	// WordSize selects the pointer width; must be 4 or 8 (§4.A).
	WordSize uint8
	// MemoryPages overrides the default 256-page linear memory; 0 keeps
	// the default.
	MemoryPages uint32
	// MaxDiagnostics bounds the diagnostic bag; <=0 means 1000.
	MaxDiagnostics int
	// Jobs caps how many files are parsed concurrently; <=0 uses
	// runtime.GOMAXPROCS(0).
	Jobs int
	// Progress, if set, receives one Event per pipeline stage.
	Progress ProgressSink
}

// Result is everything the caller needs after one Compile call: the
// diagnostic bag (always populated, even on failure) and, only when
// compilation succeeded, the module ready for Encode/WAT.
type Result struct {
	Bag    *diag.Bag
	Module *wasmgen.Module
}

// Compile runs the full two-pass pipeline (§2) over entry plus every file
// in decls. decls are declaration files: they may register import/enum/
// function signatures in pass 1 (so the entry file can reference them) but
// never contribute a function body — pass 2 runs only over entry, matching
// §2's "pass 2 is skipped for imports" at the file granularity a
// declarations-only file implies.
func Compile(ctx context.Context, fs *source.FileSet, entry source.FileID, decls []source.FileID, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 1000
	}
	bag := diag.NewBag(maxDiag)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	wordSize := opts.WordSize
	if wordSize == 0 {
		wordSize = 4
	}
	c, err := compile.New(wordSize, rep)
	if err != nil {
		return &Result{Bag: bag}, err
	}
	pages := opts.MemoryPages
	if pages == 0 {
		pages = defaultMemoryPages
	}
	c.SetMemory(pages)

	allFiles := make([]source.FileID, 0, 1+len(decls))
	allFiles = append(allFiles, entry)
	allFiles = append(allFiles, decls...)

	emit(opts.Progress, StageParse, nil)
	parsedFiles, err := parseAll(ctx, fs, allFiles, rep, maxDiag, opts.Jobs)
	if err != nil {
		emit(opts.Progress, StageParse, err)
		return &Result{Bag: bag}, err
	}

	// Pass 1 over every file, entry first so a duplicate-signature warning
	// always names the entry's declaration as the earlier one; every
	// file's symbols must be visible before any file enters pass 2 (§2).
	emit(opts.Progress, StageScan, nil)
	for _, f := range parsedFiles {
		if err := c.ScanFile(f); err != nil {
			emit(opts.Progress, StageScan, err)
			return &Result{Bag: bag}, fmt.Errorf("pass 1: %w", err)
		}
	}
	if bag.HasErrors() {
		return &Result{Bag: bag}, fmt.Errorf("pass 1 reported errors; abandoning module emission")
	}

	// Pass 2 over the entry file only.
	emit(opts.Progress, StageCompile, nil)
	if err := c.CompileFile(parsedFiles[0]); err != nil {
		emit(opts.Progress, StageCompile, err)
		return &Result{Bag: bag}, fmt.Errorf("pass 2: %w", err)
	}
	if bag.HasErrors() {
		return &Result{Bag: bag}, fmt.Errorf("pass 2 reported errors; abandoning module emission")
	}

	emit(opts.Progress, StageEncode, nil)
	c.Finalize()
	emit(opts.Progress, StageComplete, nil)
	return &Result{Bag: bag, Module: c.Module}, nil
}

// parseAll loads and parses every file in ids concurrently. Each file gets
// its own lexer/parser pair reporting into a private Bag; once every parse
// has finished, those diagnostics are forwarded to rep in file order, so
// rep (a DedupReporter, which is not safe for concurrent use) is only ever
// called from the goroutine that called parseAll.
func parseAll(ctx context.Context, fs *source.FileSet, ids []source.FileID, rep diag.Reporter, maxDiag, jobs int) ([]*ast.File, error) {
	out := make([]*ast.File, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	maxErrors, err := safecast.Conv[uint](maxDiag)
	if err != nil {
		return nil, fmt.Errorf("driver: max diagnostics overflow: %w", err)
	}

	bags := make([]*diag.Bag, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))
	for i, id := range ids {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			file := fs.Get(id)
			if file == nil {
				return fmt.Errorf("driver: file %d not found in file set", id)
			}
			bags[i] = diag.NewBag(maxDiag)
			fileRep := diag.BagReporter{Bag: bags[i]}
			lx := lexer.New(file, lexer.Options{Reporter: fileRep})
			out[i] = parser.ParseFile(id, lx, parser.Options{Reporter: fileRep, MaxErrors: maxErrors})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, b := range bags {
		if b == nil {
			continue
		}
		for _, d := range b.Items() {
			rep.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
		}
	}
	return out, nil
}
