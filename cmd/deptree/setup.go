package main

import (
	"fmt"
	"os"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage/filesystem"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage/sqlite/zombiezen"
)

// NewTreeRepository selects the backend by path: a directory becomes a
// filesystem store, anything else a SQLite file (created on first use).
func NewTreeRepository(p *Pool, path string) (storage.TreeRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("no repository path given")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filesystem.NewTreeStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "trees.sql"); err != nil {
		return nil, err
	}
	return zombiezen.NewTreeStore(pool), nil
}
