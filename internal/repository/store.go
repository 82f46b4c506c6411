package repository

import (
	"context"
	"log/slog"

	"my-admin/internal/errors"
	"my-admin/internal/logging"
)

// Record is implemented by every persisted record kind. T is the record type itself.
type Record[T any] interface {
	// Identity returns the store-assigned id; ok is false before the first save.
	Identity() (id int64, ok bool)
	// WithIdentity returns a copy carrying id.
	WithIdentity(id int64) T
	// IsValid reports whether a decoded record has the expected shape.
	IsValid() bool
}

// Store persists one record kind as a single collection on a Medium. Every
// mutation reads the whole collection, changes it in memory and writes it back.
//
// A Store does no locking; callers serialize mutations.
type Store[T Record[T]] struct {
	medium Medium
	key    string
	logger *slog.Logger
}

// NewStore creates a store keeping its collection under key. A nil medium
// behaves like an unavailable one.
func NewStore[T Record[T]](medium Medium, key string, logger *slog.Logger) *Store[T] {
	if medium == nil {
		medium = Unavailable()
	}
	return &Store[T]{
		medium: medium,
		key:    key,
		logger: logging.WithComponent(logger, logging.ComponentStore).With(logging.FieldKey, key),
	}
}

// Key returns the medium key of the collection.
func (s *Store[T]) Key() string {
	return s.key
}

// GetAll returns every record in insertion order. It returns an empty slice
// when nothing is stored, the medium is unavailable, or the stored text is malformed.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	c, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.values(), nil
}

// GetByID returns the record with the given id. found is false if there is none.
func (s *Store[T]) GetByID(ctx context.Context, id int64) (record T, found bool, err error) {
	c, _, err := s.load(ctx)
	if err != nil {
		return record, false, err
	}
	record, found = c.get(id)
	return record, found, nil
}

// Save replaces the record with the same id in place, or assigns the next id
// (highest existing id plus one) and appends. It returns the record as persisted.
func (s *Store[T]) Save(ctx context.Context, record T) (T, error) {
	var zero T

	c, writable, err := s.load(ctx)
	if err != nil {
		return zero, err
	}

	saved := c.upsert(record)
	if err := s.flush(ctx, c, writable); err != nil {
		return zero, err
	}

	id, _ := saved.Identity()
	s.logger.Debug("record saved", logging.FieldID, id)
	return saved, nil
}

// Delete removes the record with the given id and reports whether one was removed.
func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	c, writable, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if !c.remove(id) {
		return false, nil
	}
	if err := s.flush(ctx, c, writable); err != nil {
		return false, err
	}

	s.logger.Debug("record deleted", logging.FieldID, id)
	return true, nil
}

// Clear removes every record of this kind.
func (s *Store[T]) Clear(ctx context.Context) error {
	err := s.medium.Remove(ctx, s.key)
	if errors.IsErrorType(err, errors.ErrorTypeUnavailable) {
		s.logger.Debug("storage unavailable, clear skipped")
		return nil
	}
	return err
}

// load reads and decodes the collection. writable is false when the medium is
// unavailable, in which case the returned collection is empty and must not be flushed.
func (s *Store[T]) load(ctx context.Context) (c *collection[T], writable bool, err error) {
	text, found, err := s.medium.Read(ctx, s.key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeUnavailable) {
			s.logger.Debug("storage unavailable, using empty collection")
			return newCollection[T](), false, nil
		}
		return nil, false, err
	}
	if !found {
		return newCollection[T](), true, nil
	}

	c, err = decodeCollection[T](text)
	if err != nil {
		malformed := errors.NewMalformedDataError(s.key, err)
		s.logger.Warn("discarding malformed collection", logging.FieldError, malformed)
		return newCollection[T](), true, nil
	}
	return c, true, nil
}

func (s *Store[T]) flush(ctx context.Context, c *collection[T], writable bool) error {
	if !writable {
		return nil
	}

	text, err := c.encode()
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, "encode "+s.key)
	}

	err = s.medium.Write(ctx, s.key, text)
	if errors.IsErrorType(err, errors.ErrorTypeUnavailable) {
		s.logger.Debug("storage unavailable, write skipped", logging.FieldCount, len(c.order))
		return nil
	}
	return err
}
