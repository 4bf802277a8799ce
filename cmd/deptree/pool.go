package main

import (
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool opens the sqlite connection pool behind the tree store on first
// use, so commands that resolve to the filesystem backend (or never
// touch storage at all) open no database.
type Pool struct {
	p *sqlitex.Pool
}

// Open returns the shared pool, creating it the first time.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}
