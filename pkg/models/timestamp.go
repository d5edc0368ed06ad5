package models

import "time"

// Timestamp is a store-assigned moment in time, attached at write
// acceptance. A freshly submitted record may briefly carry the zero
// value before the store acknowledges it; ordering treats that as the
// earliest possible moment rather than erroring.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

func (t Timestamp) IsZero() bool {
	return t.Seconds == 0 && t.Nanos == 0
}

// Before reports whether t precedes u. Used by newest-first inbox
// ordering, where zero timestamps sink to the bottom.
func (t Timestamp) Before(u Timestamp) bool {
	if t.Seconds != u.Seconds {
		return t.Seconds < u.Seconds
	}
	return t.Nanos < u.Nanos
}
