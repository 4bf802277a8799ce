package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/render"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type TreeStore struct {
	pool *sqlitex.Pool
}

var _ storage.TreeRepository = (*TreeStore)(nil)

func NewTreeStore(pool *sqlitex.Pool) *TreeStore {
	return &TreeStore{pool: pool}
}

func (h *TreeStore) List() ([]storage.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var recs []storage.Record
	err = sqlitex.Execute(conn, "SELECT id, sentence, algorithm FROM trees ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			recs = append(recs, storage.Record{
				Id:        stmt.ColumnInt(0),
				Sentence:  stmt.ColumnText(1),
				Algorithm: stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (h *TreeStore) Read(id int) (storage.Record, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Record{}, err
	}
	defer h.pool.Put(conn)

	rec := storage.Record{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT sentence, algorithm, result FROM trees WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			rec.Sentence = stmt.ColumnText(0)
			rec.Algorithm = stmt.ColumnText(1)

			var res render.Result
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &res); err != nil {
				return fmt.Errorf("corrupt record %d: %w", id, err)
			}
			rec.Result = res
			return nil
		},
	})
	if err != nil {
		return storage.Record{}, err
	}
	if !found {
		return storage.Record{}, storage.ErrNotFound
	}

	return rec, nil
}

func (h *TreeStore) Write(rec storage.Record) (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	data, err := json.Marshal(rec.Result)
	if err != nil {
		return 0, err
	}

	err = sqlitex.Execute(conn, "INSERT INTO trees (sentence, algorithm, result) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{rec.Sentence, rec.Algorithm, string(data)},
	})
	if err != nil {
		return 0, err
	}

	return int(conn.LastInsertRowID()), nil
}
