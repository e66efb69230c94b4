package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aether-xyz/go-aether/config"
	"github.com/aether-xyz/go-aether/model"
	"github.com/aether-xyz/go-aether/parser"
	"github.com/aether-xyz/go-aether/store"
)

// loadDocument reads a design from a JSON file, or from the project catalog
// when projectName is set.
func loadDocument(cfg *config.Config, log zerolog.Logger, file, projectName string) (*model.Document, error) {
	if projectName != "" {
		st, err := store.Open(cfg.DBPath, log)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(projectName)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read design: %w", err)
	}
	return parser.FromJSON(data)
}
