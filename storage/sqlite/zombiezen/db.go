package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// treePoolSize bounds the connection pool. A command touches the tree
// store from one goroutine at a time, so one working connection plus a
// spare for an overlapping read is enough.
const treePoolSize = 2

// NewPool opens the tree database at dbPath, creating it if needed.
// The sqlitex defaults apply, so the database runs in WAL mode.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: treePoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open tree database %s: %w", dbPath, err)
	}
	return pool, nil
}
