package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/brotech/sitekit/pkg/constants"
)

// Record is one document as held by the store: its fields plus the
// store-assigned identifier merged in under "id".
type Record map[string]any

// ID returns the store-assigned identifier, or "" when absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Decode maps the record onto dst via a JSON round trip, so that the
// same field tags drive both the wire format and entity construction.
func (r Record) Decode(dst any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidRecord, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidRecord, err)
	}
	return nil
}

// Fields builds a field map from an entity struct, again via JSON so
// struct tags decide the field names.
func Fields(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields Record
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ServerTimestamp marks a field for assignment by the store at write
// acceptance time. The caller never supplies the moment itself.
var ServerTimestamp = map[string]any{"$serverTimestamp": true}

// IsServerTimestamp reports whether a decoded field value is the
// server-timestamp sentinel.
func IsServerTimestamp(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	flagged, ok := m["$serverTimestamp"].(bool)
	return ok && flagged
}

// TimeSeconds reads the seconds component of a nested timestamp field.
// An absent, null or malformed timestamp reads as 0, the earliest
// possible moment, so that freshly written records whose server
// timestamp has not yet been assigned sort last in descending order.
func (r Record) TimeSeconds(field string) int64 {
	v, ok := r[field]
	if !ok || v == nil {
		return 0
	}
	m, ok := v.(map[string]any)
	if !ok {
		return 0
	}
	switch s := m["seconds"].(type) {
	case float64:
		return int64(s)
	case int64:
		return s
	case int:
		return int64(s)
	case json.Number:
		n, _ := s.Int64()
		return n
	}
	return 0
}

// SortByTimeDesc orders records newest first on a nested timestamp
// field. The sort is stable and missing timestamps sort last.
func SortByTimeDesc(records []Record, field string) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TimeSeconds(field) > records[j].TimeSeconds(field)
	})
}
