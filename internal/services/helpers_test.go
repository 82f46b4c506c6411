package services

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"my-admin/internal/domain"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/repository/memory"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func newTestStores() *repository.Stores {
	return repository.NewStores(memory.New(), logging.Discard())
}

func newTestContainer(t *testing.T, clk *testClock) (*ServiceContainer, *repository.Stores) {
	t.Helper()
	stores := newTestStores()
	container, err := NewServiceContainer(context.Background(), stores, Options{
		Clock:    clk,
		Location: time.UTC,
		Logger:   logging.Discard(),
	})
	require.NoError(t, err)
	return container, stores
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func march(day int) domain.Date {
	return domain.NewDate(2025, time.March, day)
}

func stoppedEntry(title string, start time.Time, minutes int) domain.TimeEntry {
	return domain.NewTimeEntry(title, "Work", start).Stop(start.Add(time.Duration(minutes) * time.Minute))
}

func amount(v float64) *float64 { return &v }

func datePtr(d domain.Date) *domain.Date { return &d }

func planOf(name string, amt float64, freq domain.Frequency) domain.SubscriptionPlan {
	p := domain.NewSubscriptionPlan(name, freq)
	p.Amount = amount(amt)
	return p
}

// brokenMedium fails every call with a plain error, which stores surface.
type brokenMedium struct{}

var errBroken = stderrors.New("disk on fire")

func (brokenMedium) Read(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (brokenMedium) Write(context.Context, string, string) error       { return errBroken }
func (brokenMedium) Remove(context.Context, string) error              { return errBroken }
