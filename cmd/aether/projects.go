package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/config"
	"github.com/aether-xyz/go-aether/parser"
	"github.com/aether-xyz/go-aether/store"
)

func projects(cfg *config.Config, log zerolog.Logger, args []string) error {
	if len(args) < 1 {
		projectsUsage()
		return fmt.Errorf("subcommand required")
	}

	st, err := store.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer st.Close()

	switch args[0] {
	case "list":
		return projectsList(st)
	case "save":
		return projectsSave(st, args[1:])
	case "export":
		return projectsExport(st, args[1:])
	case "delete":
		return projectsDelete(st, args[1:])
	default:
		projectsUsage()
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func projectsUsage() {
	fmt.Fprintf(os.Stderr, `Usage: aether projects <subcommand> [options]

Manage the saved project catalog.

Subcommands:
  list     List saved projects
  save     Save a design file into the catalog
  export   Write a saved project back out to a file
  delete   Remove a project from the catalog

Examples:
  aether projects save counter.json --name counter
  aether projects list
  aether projects export counter --output counter.json
  aether projects delete counter
`)
}

func projectsList(st *store.Store) error {
	infos, err := st.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No saved projects")
		return nil
	}
	fmt.Printf("%-24s %8s  %s\n", "NAME", "SIZE", "UPDATED")
	for _, info := range infos {
		fmt.Printf("%-24s %8d  %s\n", info.Name, info.Size, info.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func projectsSave(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("projects save", flag.ExitOnError)
	name := fs.String("name", "", "Catalog name (defaults to the design's project name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("design file required")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read design: %w", err)
	}
	doc, err := parser.FromJSON(data)
	if err != nil {
		return err
	}

	saveAs := *name
	if saveAs == "" {
		saveAs = doc.Name
	}
	if err := st.Save(saveAs, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved project: %s\n", saveAs)
	return nil
}

func projectsExport(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("projects export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("project name required")
	}
	if *output == "" {
		return fmt.Errorf("--output required")
	}

	doc, err := st.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := parser.ToJSON(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %s to %s\n", fs.Arg(0), *output)
	return nil
}

func projectsDelete(st *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("project name required")
	}
	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Deleted project: %s\n", args[0])
	return nil
}
