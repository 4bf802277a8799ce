package storage

import (
	"errors"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/render"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// Record is one persisted parse: the sentence, the algorithm that parsed
// it and the render-ready projection.
type Record struct {
	Id        int           `json:"id"`
	Sentence  string        `json:"sentence"`
	Algorithm string        `json:"algorithm"`
	Result    render.Result `json:"result"`
}

// TreeReader defines read operations for parse storage
type TreeReader interface {
	// List returns the metadata (Id, Sentence, Algorithm) of all records.
	// The Result projection is not loaded.
	List() ([]Record, error)

	// Read returns a full record by id
	Read(id int) (Record, error)
}

// TreeWriter defines write operations for parse storage
type TreeWriter interface {
	// Write persists a record and returns its assigned id
	Write(rec Record) (int, error)
}

// TreeRepository combines read and write operations
type TreeRepository interface {
	TreeReader
	TreeWriter
}
