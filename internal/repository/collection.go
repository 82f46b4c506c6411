package repository

import (
	"encoding/json"
	"fmt"
	"slices"
)

// collection is an insertion-ordered map of records keyed by identity.
type collection[T Record[T]] struct {
	order []int64
	items map[int64]T
}

func newCollection[T Record[T]]() *collection[T] {
	return &collection[T]{items: make(map[int64]T)}
}

// decodeCollection parses a persisted collection and checks every record's shape.
func decodeCollection[T Record[T]](text string) (*collection[T], error) {
	var records []T
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, err
	}

	c := newCollection[T]()
	for i, record := range records {
		id, ok := record.Identity()
		if !ok || id <= 0 {
			return nil, fmt.Errorf("record at position %d has no valid id", i)
		}
		if _, dup := c.items[id]; dup {
			return nil, fmt.Errorf("duplicate id %d", id)
		}
		if !record.IsValid() {
			return nil, fmt.Errorf("record %d has an invalid shape", id)
		}
		c.order = append(c.order, id)
		c.items[id] = record
	}
	return c, nil
}

func (c *collection[T]) encode() (string, error) {
	data, err := json.Marshal(c.values())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) get(id int64) (T, bool) {
	record, ok := c.items[id]
	return record, ok
}

// upsert replaces the record with a matching identity in place, or assigns
// the next identity and appends.
func (c *collection[T]) upsert(record T) T {
	if id, ok := record.Identity(); ok {
		if _, exists := c.items[id]; exists {
			c.items[id] = record
			return record
		}
	}

	id := c.nextID()
	record = record.WithIdentity(id)
	c.order = append(c.order, id)
	c.items[id] = record
	return record
}

func (c *collection[T]) remove(id int64) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(existing int64) bool { return existing == id })
	return true
}

func (c *collection[T]) nextID() int64 {
	var highest int64
	for _, id := range c.order {
		highest = max(highest, id)
	}
	return highest + 1
}
