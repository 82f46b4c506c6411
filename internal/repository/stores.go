package repository

import (
	"context"
	"log/slog"

	"my-admin/internal/domain"
)

// Collection keys on the medium.
const (
	TimeEntriesKey   = "my-admin-timesheets"
	TasksKey         = "my-admin-todos"
	SubscriptionsKey = "my-admin-subscriptions"
)

// Stores groups the store of every record kind over one medium.
type Stores struct {
	TimeEntries   *Store[domain.TimeEntry]
	Tasks         *Store[domain.Task]
	Subscriptions *Store[domain.SubscriptionPlan]

	medium Medium
}

// NewStores creates the three record stores on medium.
func NewStores(medium Medium, logger *slog.Logger) *Stores {
	if medium == nil {
		medium = Unavailable()
	}
	return &Stores{
		TimeEntries:   NewStore[domain.TimeEntry](medium, TimeEntriesKey, logger),
		Tasks:         NewStore[domain.Task](medium, TasksKey, logger),
		Subscriptions: NewStore[domain.SubscriptionPlan](medium, SubscriptionsKey, logger),
		medium:        medium,
	}
}

// keyLister is implemented by the in-process medium.
type keyLister interface {
	Keys() []string
}

// Describe reports on the shared medium. A medium that only lists its keys is
// described as process memory.
func (s *Stores) Describe(ctx context.Context) (StorageInfo, error) {
	switch m := s.medium.(type) {
	case Describer:
		return m.Describe(ctx)
	case keyLister:
		info := StorageInfo{Backend: "memory", Location: "process memory"}
		for _, key := range m.Keys() {
			text, _, err := s.medium.Read(ctx, key)
			if err != nil {
				return StorageInfo{}, err
			}
			info.Collections = append(info.Collections, CollectionInfo{Key: key, Bytes: len(text)})
		}
		return info, nil
	default:
		return StorageInfo{Backend: "unknown"}, nil
	}
}
