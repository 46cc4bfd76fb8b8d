package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/speclab/rspeclint/internal/config"
)

const configTemplate = `# rspeclint configuration.

# Status-code notation enforced for have_http_status arguments.
# One of: symbolic (have_http_status :ok), numeric (have_http_status 200).
enforced_style: symbolic

# Glob patterns (relative to the lint root) to skip.
# exclude:
#   - "spec/fixtures/**"
`

// runInit implements the `rspeclint init` subcommand, which writes a starter
// configuration file.
func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rspeclint init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var dryRun, force bool
	fs.BoolVar(&dryRun, "dry-run", false, "print the config without writing it")
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: rspeclint init [flags] [path]

Write a starter %s configuration file. An existing file is left untouched
unless --force is given.

path defaults to ./%s.

Flags:
`, config.DefaultFile, config.DefaultFile)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if dryRun {
		_, _ = fmt.Fprint(stdout, configTemplate)
		return nil
	}

	path := config.DefaultFile
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stderr, "wrote %s\n", path)
	return nil
}
