package model

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

// Warehouse is one row of warehouse history. The business unit code names
// the warehouse across its whole history; at most one row per code is
// active (ArchivedAt == nil) at any time.
type Warehouse struct {
	ID               int64      `json:"-"`
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            int        `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}

func (w Warehouse) Status() Status {
	if w.ArchivedAt != nil {
		return StatusArchived
	}
	return StatusActive
}

func (w Warehouse) IsActive() bool {
	return w.ArchivedAt == nil
}

// Archived returns a copy of w closed at the given instant. The source
// value stays untouched; archival never mutates in place.
func Archived(w Warehouse, at time.Time) Warehouse {
	w.ArchivedAt = &at
	return w
}
