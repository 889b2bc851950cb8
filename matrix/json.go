// Package matrix: JSON round-trip for Dense in a self-describing,
// field-named form, so schema additions stay backward compatible.
package matrix

import "encoding/json"

// denseJSON is the wire form of a Dense: explicit size plus row-major data.
type denseJSON struct {
	Size int       `json:"size"`
	Data []float64 `json:"data"`
}

// MarshalJSON encodes the matrix as {"size": n, "data": [...]} with data
// in row-major order.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(denseJSON{Size: m.n, Data: m.data})
}

// UnmarshalJSON decodes the field-named form produced by MarshalJSON.
// Returns ErrBadShape when size and data length disagree or size ≤ 0.
func (m *Dense) UnmarshalJSON(raw []byte) error {
	var w denseJSON
	if err := json.Unmarshal(raw, &w); err != nil {
		return err
	}
	if w.Size <= 0 || len(w.Data) != w.Size*w.Size {
		return ErrBadShape
	}

	m.n = w.Size
	m.data = w.Data

	return nil
}
