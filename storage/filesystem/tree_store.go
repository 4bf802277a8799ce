package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage"
)

// TreeStore keeps one JSON file per record in a directory, named by id
// (0.json, 1.json, ...).
type TreeStore struct {
	dir string
}

var _ storage.TreeRepository = (*TreeStore)(nil)

// NewTreeStore creates a filesystem parse store rooted at dir.
func NewTreeStore(dir string) (*TreeStore, error) {
	if _, err := os.ReadDir(dir); err != nil {
		return nil, err
	}
	return &TreeStore{dir: dir}, nil
}

func (h *TreeStore) List() ([]storage.Record, error) {
	ids, err := h.ids()
	if err != nil {
		return nil, err
	}

	recs := make([]storage.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := h.Read(id)
		if err != nil {
			return nil, err
		}
		rec.Result.Nodes = nil
		rec.Result.Edges = nil
		recs = append(recs, rec)
	}
	return recs, nil
}

func (h *TreeStore) Read(id int) (storage.Record, error) {
	data, err := os.ReadFile(h.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, err
	}

	var rec storage.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return storage.Record{}, fmt.Errorf("corrupt record %d: %w", id, err)
	}
	rec.Id = id
	return rec, nil
}

func (h *TreeStore) Write(rec storage.Record) (int, error) {
	ids, err := h.ids()
	if err != nil {
		return 0, err
	}

	next := 0
	if len(ids) > 0 {
		next = ids[len(ids)-1] + 1
	}
	rec.Id = next

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(h.path(next), data, 0o644); err != nil {
		return 0, err
	}
	return next, nil
}

func (h *TreeStore) path(id int) string {
	return filepath.Join(h.dir, strconv.Itoa(id)+".json")
}

// ids returns the stored record ids in ascending order.
func (h *TreeStore) ids() ([]int, error) {
	files, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}

	var ids []int
	for _, file := range files {
		name := file.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids, nil
}
