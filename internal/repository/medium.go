package repository

import (
	"context"
	"time"

	"my-admin/internal/errors"
)

// Medium is a durable key-value text store. Each record kind keeps its whole
// collection under one key.
type Medium interface {
	// Read returns the text stored under key. found is false when nothing was ever written.
	Read(ctx context.Context, key string) (text string, found bool, err error)
	// Write replaces the text stored under key in a single operation.
	Write(ctx context.Context, key string, text string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// ClosableMedium is a Medium that holds resources such as a database handle.
type ClosableMedium interface {
	Medium
	Close() error
}

// CollectionInfo describes one stored collection.
type CollectionInfo struct {
	Key       string
	Bytes     int
	UpdatedAt *time.Time
}

// StorageInfo describes a medium and what it currently holds.
type StorageInfo struct {
	Backend       string
	Location      string
	SchemaVersion *uint
	Collections   []CollectionInfo
}

// Describer is implemented by media that can report on their contents.
type Describer interface {
	Describe(ctx context.Context) (StorageInfo, error)
}

// unavailableMedium stands in when no persistence medium exists. Every call
// reports ErrorTypeUnavailable, which stores treat as an empty, read-only collection.
type unavailableMedium struct{}

// Unavailable returns a medium that is never reachable.
func Unavailable() ClosableMedium {
	return unavailableMedium{}
}

func (unavailableMedium) Read(context.Context, string) (string, bool, error) {
	return "", false, errors.NewUnavailableError("read")
}

func (unavailableMedium) Write(context.Context, string, string) error {
	return errors.NewUnavailableError("write")
}

func (unavailableMedium) Remove(context.Context, string) error {
	return errors.NewUnavailableError("remove")
}

func (unavailableMedium) Close() error {
	return nil
}

func (unavailableMedium) Describe(context.Context) (StorageInfo, error) {
	return StorageInfo{Backend: "none"}, nil
}
