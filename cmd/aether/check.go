package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/codegen/fyne"
	"github.com/aether-xyz/go-aether/config"
	"github.com/aether-xyz/go-aether/validator"
)

func check(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	projectName := fs.String("project", "", "Check a saved catalog project instead of a file")
	timeout := fs.Duration("timeout", validator.DefaultTimeout, "Compile check timeout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: aether check <design.json> [options]

Generate a design document and compile-check the result with the Go toolchain.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  aether check counter.json
  aether check --project counter --timeout 5m
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *projectName == "" && fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("design file or --project required")
	}

	doc, err := loadDocument(cfg, log, fs.Arg(0), *projectName)
	if err != nil {
		return err
	}

	project, err := fyne.Generate(context.Background(), doc)
	if err != nil {
		return fmt.Errorf("generate project: %w", err)
	}
	printReport(project.Report)

	v := validator.New(log)
	v.Timeout = *timeout

	fmt.Fprintln(os.Stderr, "Compiling...")
	res, err := v.Check(context.Background(), project)
	if err != nil {
		return fmt.Errorf("compile check: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Compile check: %s (%.1fs)\n", res.Status, res.Duration.Seconds())
	if res.Status != validator.StatusPassed && res.Output != "" {
		fmt.Fprintln(os.Stderr, res.Output)
	}
	if res.Status != validator.StatusPassed {
		return fmt.Errorf("compile check %s after %s", res.Status, res.Duration.Round(time.Millisecond))
	}
	return nil
}
