package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/config"
	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/resolve"
)

func summary(cfg *config.Config, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	projectName := fs.String("project", "", "Summarize a saved catalog project instead of a file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: aether summary <design.json>

Display a quick summary of a design document.

Examples:
  aether summary counter.json
  aether summary --project counter
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

	fmt.Printf("Project: %s\n", doc.Name)
	fmt.Printf("Widgets: %d\n", doc.Len())

	kinds := make(map[string]int)
	doc.Walk(func(n *model.Node) {
		kinds[n.Kind()]++
	})
	for _, kind := range model.Kinds() {
		if count := kinds[kind]; count > 0 {
			fmt.Printf("  %-10s %d\n", kind, count)
		}
	}

	fmt.Printf("Variables: %d\n", len(doc.Variables))
	for _, name := range doc.Variables.Names() {
		v := doc.Variables[name]
		fmt.Printf("  %-16s %s = %s\n", name, v.Type, v.Default)
	}

	if len(doc.Assets) > 0 {
		fmt.Printf("Assets: %d\n", len(doc.Assets))
		for _, name := range doc.Assets.Names() {
			a := doc.Assets[name]
			fmt.Printf("  %-16s %s (%s)\n", name, a.Path, a.Type)
		}
	}

	diags := resolve.DocumentDiagnostics(doc)
	if len(diags) == 0 {
		fmt.Println("\nNo issues found")
		return nil
	}
	fmt.Printf("\nIssues: %d node(s)\n", len(diags))
	for id, list := range diags {
		for _, d := range list {
			fmt.Printf("  [%s] %s: %s\n", d.Code, id, d.Message)
		}
	}
	return nil
}
