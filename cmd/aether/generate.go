package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/codegen/fyne"
	"github.com/aether-xyz/go-aether/config"
)

func generate(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	projectName := fs.String("project", "", "Generate from a saved catalog project instead of a file")
	dir := fs.String("dir", "", "Output directory (defaults to AETHER_OUTPUT_DIR)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: aether generate <design.json> [options]

Generate a runnable Fyne project from a design document.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Generate into ./counter_app
  aether generate counter.json --dir counter_app

  # Generate a saved catalog project
  aether generate --project counter --dir counter_app
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

	outDir := *dir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, f := range project.Files {
		path := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		log.Debug().Str("file", path).Msg("wrote generated file")
	}

	fmt.Fprintf(os.Stderr, "Generated %s (%d files) into %s\n", project.Module, len(project.Files), outDir)
	printReport(project.Report)
	return nil
}

func printReport(report fyne.Report) {
	fmt.Fprintf(os.Stderr, "Status: %s\n", report.Status)
	if report.FormattingDegraded {
		fmt.Fprintln(os.Stderr, "Warning: output could not be formatted with gofmt")
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "  [%s] %s", w.Code, w.Message)
		if w.Element != "" {
			fmt.Fprintf(os.Stderr, " (%s)", w.Element)
		}
		fmt.Fprintln(os.Stderr)
	}
}
