package sqlite

import "time"

// CollectionRow is one persisted collection in the collections table.
type CollectionRow struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
