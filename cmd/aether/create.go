package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/config"
	"github.com/aether-xyz/go-aether/parser"
	"github.com/aether-xyz/go-aether/templates"
)

func create(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	templateName := fs.String("template", "", "Template name (required)")
	output := fs.String("output", "", "Output file (required)")
	name := fs.String("name", "", "Project name (defaults to the template's)")
	listTemplates := fs.Bool("list", false, "List available templates")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: aether create [options]

Create a design document from a template.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Available Templates:
`)
		for _, tn := range templates.List() {
			tmpl, _ := templates.Get(tn)
			fmt.Fprintf(os.Stderr, "  %-12s %s\n", tn, tmpl.Description())
		}
		fmt.Fprintf(os.Stderr, `
Examples:
  # List templates
  aether create --list

  # Create a counter app
  aether create --template counter --output counter.json

  # Create a form with a custom project name
  aether create --template form --name signup --output signup.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *listTemplates {
		fmt.Println("Available templates:")
		for _, tn := range templates.List() {
			tmpl, _ := templates.Get(tn)
			fmt.Printf("  %-12s %s\n", tn, tmpl.Description())
		}
		return nil
	}

	if *templateName == "" {
		fs.Usage()
		return fmt.Errorf("--template required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	tmpl, err := templates.Get(*templateName)
	if err != nil {
		return err
	}

	doc, err := tmpl.Build()
	if err != nil {
		return fmt.Errorf("build template: %w", err)
	}
	if *name != "" {
		doc.Name = *name
	}

	jsonData, err := parser.ToJSON(doc)
	if err != nil {
		return fmt.Errorf("export JSON: %w", err)
	}

	if err := os.WriteFile(*output, jsonData, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	log.Info().Str("template", tmpl.Name()).Str("output", *output).Msg("design created")
	fmt.Fprintf(os.Stderr, "Created %s design: %s\n", tmpl.Name(), *output)
	fmt.Fprintf(os.Stderr, "  Widgets: %d\n", doc.Len())
	fmt.Fprintf(os.Stderr, "  Variables: %d\n", len(doc.Variables))

	return nil
}
