package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "create":
		if err := create(cfg, log, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(cfg, log, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(cfg, log, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(cfg, log, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "projects":
		if err := projects(cfg, log, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("aether version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`aether - visual-to-source UI compiler

Usage:
  aether <command> [options]

Commands:
  create     Create a design document from a template
  generate   Generate a Fyne project from a design document
  check      Generate and compile-check a design document
  summary    Display quick summary of a design document
  projects   Manage the saved project catalog
  help       Show this help message
  version    Show version information

Examples:
  # Create a counter app design
  aether create --template counter --output counter.json

  # Generate Go sources into ./counter_app
  aether generate counter.json --dir counter_app

  # Compile-check the generated project
  aether check counter.json

  # Save a design into the catalog and list it
  aether projects save counter.json --name counter
  aether projects list

For command-specific help, run:
  aether <command> --help`)
}
