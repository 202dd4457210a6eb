package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wasmc/internal/cache"
	"wasmc/internal/config"
	"wasmc/internal/diag"
	"wasmc/internal/driver"
	"wasmc/internal/project"
	"wasmc/internal/source"
	"wasmc/internal/ui"
)

var (
	severityErrorColor   = color.New(color.FgRed, color.Bold)
	severityWarningColor = color.New(color.FgYellow, color.Bold)
	severityInfoColor    = color.New(color.FgCyan)
)

func severityTag(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return severityErrorColor.Sprint(s)
	case diag.SevWarning:
		return severityWarningColor.Sprint(s)
	default:
		return severityInfoColor.Sprint(s)
	}
}

var buildCmd = &cobra.Command{
	Use:   "build [entry] [declarations]",
	Short: "Compile a module into a standalone WebAssembly binary",
	Long: "Build compiles one entry source file, plus an optional declarations\n" +
		"file, into a .wasm module. With no arguments it looks for wasmc.toml\n" +
		"in the current directory and its ancestors.",
	Args: cobra.MaximumNArgs(2),
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().Uint8("word-size", 0, "pointer width in bytes, 4 or 8 (overrides wasmc.toml)")
	buildCmd.Flags().Uint32("memory-pages", 0, "linear memory size in 64KiB pages (overrides wasmc.toml)")
	buildCmd.Flags().String("out", "", "output path (defaults to the entry file's base name)")
	buildCmd.Flags().String("emit", "wasm", "output format (wasm|wat)")
	buildCmd.Flags().String("progress", "auto", "progress UI (auto|on|off)")
	buildCmd.Flags().Bool("no-cache", false, "skip the on-disk module cache")
	buildCmd.Flags().Bool("drop-cache", false, "clear the on-disk module cache before building")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	wordSizeFlag, _ := cmd.Flags().GetUint8("word-size")
	memoryPagesFlag, _ := cmd.Flags().GetUint32("memory-pages")
	outPath, _ := cmd.Flags().GetString("out")
	emitFormat, _ := cmd.Flags().GetString("emit")
	uiValue, _ := cmd.Flags().GetString("progress")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	dropCache, _ := cmd.Flags().GetBool("drop-cache")
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorMode) {
	case "off":
		color.NoColor = true
	case "on":
		color.NoColor = false
	}

	emitFormat = strings.ToLower(emitFormat)
	if emitFormat != "wasm" && emitFormat != "wat" {
		return fmt.Errorf("unsupported --emit value %q (must be wasm or wat)", emitFormat)
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	entryPath, declPath, err := resolveBuildTargets(args)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	entryID, err := fs.Load(entryPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", entryPath, err)
	}
	var declIDs []source.FileID
	if declPath != "" {
		declID, err := fs.Load(declPath)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", declPath, err)
		}
		declIDs = append(declIDs, declID)
	}

	wordSize := wordSizeFlag
	memoryPages := memoryPagesFlag
	if len(args) == 0 {
		// The build targets came from wasmc.toml; it also supplies the
		// codegen options that no flag set.
		if manifestPath, found, err := config.Find("."); err == nil && found {
			if proj, err := config.Load(manifestPath); err == nil {
				if wordSize == 0 {
					wordSize = proj.WordSize
				}
				if memoryPages == 0 {
					memoryPages = proj.MemoryPages
				}
			}
		}
	}

	diskCache, cacheErr := cache.Open("wasmc")
	if cacheErr != nil {
		diskCache = nil
	}
	if dropCache && diskCache != nil {
		if err := diskCache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
	}

	var cacheKey project.Digest
	if !noCache && diskCache != nil {
		declDigests := make([]project.Digest, 0, len(declIDs))
		for _, id := range declIDs {
			declDigests = append(declDigests, project.Digest(fs.Get(id).Hash))
		}
		cacheKey = cache.Key(project.Digest(fs.Get(entryID).Hash), orDefault(wordSize, 4), orDefaultU32(memoryPages, 256), declDigests...)
		if payload, ok, err := diskCache.Get(cacheKey); err == nil && ok && !payload.Broken {
			return writeOutput(outPath, entryPath, emitFormat, payload.Wasm, nil)
		}
	}

	opts := driver.Options{WordSize: wordSize, MemoryPages: memoryPages, MaxDiagnostics: maxDiagnostics}

	useTUI := shouldUseTUI(uiModeValue)
	var res *driver.Result
	if useTUI {
		res, err = runBuildWithUI(cmd.Context(), entryPath, fs, entryID, declIDs, opts)
	} else {
		res, err = driver.Compile(cmd.Context(), fs, entryID, declIDs, opts)
	}
	if err != nil {
		printDiagnostics(res, quiet)
		return err
	}
	if res.Bag.HasErrors() {
		printDiagnostics(res, quiet)
		return fmt.Errorf("build failed with %d diagnostic(s)", len(res.Bag.Items()))
	}
	printDiagnostics(res, quiet)

	wasmBytes, err := res.Module.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode module: %w", err)
	}

	if !noCache && diskCache != nil {
		_ = diskCache.Put(cacheKey, &cache.Payload{
			WordSize:    orDefault(wordSize, 4),
			MemoryPages: orDefaultU32(memoryPages, 256),
			Wasm:        wasmBytes,
		})
	}

	return writeOutput(outPath, entryPath, emitFormat, wasmBytes, res.Module)
}

func resolveBuildTargets(args []string) (entry, decl string, err error) {
	switch len(args) {
	case 0:
		manifestPath, found, err := config.Find(".")
		if err != nil {
			return "", "", err
		}
		if !found {
			return "", "", fmt.Errorf("no wasmc.toml found\nplease specify the entry file explicitly, e.g.:\n  wasmc build path/to/main.wc")
		}
		proj, err := config.Load(manifestPath)
		if err != nil {
			return "", "", err
		}
		return proj.ResolvePath(proj.Entry), proj.ResolvePath(proj.Declarations), nil
	case 1:
		return args[0], "", nil
	default:
		return args[0], args[1], nil
	}
}

func writeOutput(outPath, entryPath, format string, wasmBytes []byte, module moduleEncoder) (err error) {
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(entryPath), filepath.Ext(entryPath))
		if format == "wat" {
			outPath = base + ".wat"
		} else {
			outPath = base + ".wasm"
		}
	}
	if format == "wat" {
		if module == nil {
			return fmt.Errorf("internal error: WAT output requested from a cached build; rerun with --no-cache")
		}
		return os.WriteFile(outPath, []byte(module.WAT()), 0o644)
	}
	return os.WriteFile(outPath, wasmBytes, 0o644)
}

// moduleEncoder narrows *wasmgen.Module down to the one method writeOutput
// needs, so a nil interface value (the cache-hit path) is detectable.
type moduleEncoder interface {
	WAT() string
}

func orDefault(v, def uint8) uint8 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultU32(v, def uint32) uint32 {
	if v == 0 {
		return def
	}
	return v
}

func printDiagnostics(res *driver.Result, quiet bool) {
	if res == nil || res.Bag == nil {
		return
	}
	for _, d := range res.Bag.Items() {
		if quiet && d.Severity != diag.SevError {
			continue
		}
		fmt.Fprintf(os.Stderr, "%s[%d]: %s\n", severityTag(d.Severity), d.Code, d.Message)
	}
}

func runBuildWithUI(ctx context.Context, title string, fs *source.FileSet, entry source.FileID, decls []source.FileID, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 16)
	type outcome struct {
		res *driver.Result
		err error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Compile(ctx, fs, entry, decls, optsCopy)
		outcomeCh <- outcome{res: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("wasmc build "+title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.res, uiErr
	}
	return out.res, out.err
}
