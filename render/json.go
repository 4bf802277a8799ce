package render

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes parse results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer

	// Indent pretty-prints the output when non-empty.
	Indent string
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes one result.
func (r *JSONRenderer) Render(res Result) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", r.Indent)
	return enc.Encode(res)
}

// RenderAll serializes a batch of results as a JSON array.
func (r *JSONRenderer) RenderAll(results []Result) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", r.Indent)
	return enc.Encode(results)
}
