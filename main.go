// rspeclint checks RSpec files for have_http_status status-code notation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/speclab/rspeclint/internal/config"
	"github.com/speclab/rspeclint/internal/discover"
	"github.com/speclab/rspeclint/internal/fix"
	"github.com/speclab/rspeclint/internal/httpstatus"
	"github.com/speclab/rspeclint/internal/model"
	"github.com/speclab/rspeclint/internal/parse"
	"github.com/speclab/rspeclint/internal/report"
	"github.com/speclab/rspeclint/internal/rule"
)

var version = "dev"

// errOffensesFound marks a successful run that found uncorrected offenses,
// separating the exit-1 path from operational failures.
var errOffensesFound = errors.New("offenses found")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errOffensesFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "init" {
		return runInit(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("rspeclint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		styleFlag   string
		configPath  string
		autocorrect bool
		noColor     bool
		showVersion bool
	)

	fs.StringVar(&styleFlag, "s", "", "enforced style: symbolic or numeric (overrides config)")
	fs.StringVar(&styleFlag, "style", "", "enforced style: symbolic or numeric (overrides config)")
	fs.StringVar(&configPath, "c", "", "config file path")
	fs.StringVar(&configPath, "config", "", "config file path")
	fs.BoolVar(&autocorrect, "a", false, "autocorrect offenses in place")
	fs.BoolVar(&autocorrect, "autocorrect", false, "autocorrect offenses in place")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "rspeclint %s\n", version)
		return nil
	}

	if noColor {
		color.NoColor = true
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving lint path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("lint path: %w", err)
	}

	// Linting a single file: discovery and config lookup use its directory.
	base := root
	var files []string
	if !info.IsDir() {
		if !strings.HasSuffix(root, ".rb") {
			return fmt.Errorf("%s: not a Ruby file", root)
		}
		base = filepath.Dir(root)
		files = []string{filepath.Base(root)}
	}

	cfg, err := loadConfig(configPath, base)
	if err != nil {
		return err
	}

	style := cfg.EnforcedStyle
	if styleFlag != "" {
		if err := style.UnmarshalText([]byte(styleFlag)); err != nil {
			return err
		}
	}

	if files == nil {
		files, err = discover.Files(base, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("discovering spec files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no spec files found")
		}
	}

	table := httpstatus.Load()
	checker := rule.New(style, table)

	if autocorrect && !checker.SupportsAutocorrect() {
		_, _ = fmt.Fprintln(stderr, "Warning: autocorrection disabled: status code registry unavailable")
		autocorrect = false
	}

	results, err := checkFilesConcurrent(base, files, checker, stderr)
	if err != nil {
		return err
	}

	rep := report.New(stdout)
	for _, res := range results {
		if !res.ok {
			continue
		}
		rep.FileDone()

		if autocorrect && len(res.diags) > 0 {
			fixed, n := fix.Apply(res.source, res.diags)
			if n > 0 {
				if err := writeFixed(filepath.Join(base, res.path), fixed); err != nil {
					return err
				}
			}
		}

		for _, d := range res.diags {
			rep.Offense(d, autocorrect && d.Replacement != "")
		}
	}

	offenses, corrected := rep.Summary()
	if offenses > corrected {
		return errOffensesFound
	}
	return nil
}

// loadConfig resolves the effective configuration: an explicit path must
// load, the default location may be absent.
func loadConfig(path, base string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(filepath.Join(base, config.DefaultFile))
	if os.IsNotExist(err) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func writeFixed(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type fileResult struct {
	path   string
	source []byte
	diags  []model.Diagnostic
	ok     bool
}

func checkFilesConcurrent(base string, files []string, checker *rule.HTTPStatus, stderr io.Writer) ([]fileResult, error) {
	query, err := parse.CallQuery()
	if err != nil {
		return nil, fmt.Errorf("compiling call query: %w", err)
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]fileResult, len(files))

	var wg sync.WaitGroup
	var stderrMu sync.Mutex

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each goroutine gets its own parser.
			parser := parse.NewParser()

			for idx := range work {
				rel := files[idx]
				source, err := os.ReadFile(filepath.Join(base, rel))
				if err != nil {
					stderrMu.Lock()
					_, _ = fmt.Fprintf(stderr, "Warning: failed to read %s: %v\n", rel, err)
					stderrMu.Unlock()
					continue
				}

				res := fileResult{path: rel, source: source, ok: true}
				for _, call := range parse.Calls(parser, query, source) {
					if d, ok := checker.Check(rel, call); ok {
						res.diags = append(res.diags, d)
					}
				}
				results[idx] = res
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	return results, nil
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-s": true, "--s": true,
	"-style": true, "--style": true,
	"-c": true, "--c": true,
	"-config": true, "--config": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
