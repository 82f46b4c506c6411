// Package timer owns the single running time entry.
//
// The machine is either Idle or Running one entry that has no end time. The
// running entry is found again after a restart by scanning the stored entries.
package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"my-admin/internal/clock"
	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/logging"
)

// State is the timer's disposition.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// EntryStore is the part of the time entry store the timer needs.
type EntryStore interface {
	GetAll(ctx context.Context) ([]domain.TimeEntry, error)
	GetByID(ctx context.Context, id int64) (domain.TimeEntry, bool, error)
	Save(ctx context.Context, entry domain.TimeEntry) (domain.TimeEntry, error)
}

// Machine is the timer state machine. It does no locking; callers serialize transitions.
type Machine struct {
	store  EntryStore
	clock  clock.Clock
	logger *slog.Logger
	active *domain.TimeEntry
}

// NewMachine creates a timer and adopts a running entry left by a previous process.
func NewMachine(ctx context.Context, store EntryStore, clk clock.Clock, logger *slog.Logger) (*Machine, error) {
	if clk == nil {
		clk = clock.System()
	}
	m := &Machine{
		store:  store,
		clock:  clk,
		logger: logging.WithComponent(logger, logging.ComponentTimer),
	}
	if err := m.recover(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// recover adopts the first stored entry without an end time. Any further
// running entries break the single-timer rule; they are stopped now.
func (m *Machine) recover(ctx context.Context) error {
	entries, err := m.store.GetAll(ctx)
	if err != nil {
		return err
	}

	var strays []domain.TimeEntry
	for _, entry := range entries {
		if !entry.IsRunning() {
			continue
		}
		if m.active == nil {
			adopted := entry
			m.active = &adopted
			continue
		}
		strays = append(strays, entry)
	}

	if m.active != nil {
		id, _ := m.active.Identity()
		m.logger.Debug("recovered running timer", logging.FieldID, id)
	}

	for _, stray := range strays {
		id, _ := stray.Identity()
		m.logger.Warn("closing extra running timer", logging.FieldID, id)
		if _, err := m.store.Save(ctx, stray.Stop(m.now())); err != nil {
			return err
		}
	}
	return nil
}

// State reports whether a timer is running.
func (m *Machine) State() State {
	if m.active == nil {
		return Idle
	}
	return Running
}

// Active returns a copy of the running entry.
func (m *Machine) Active() (domain.TimeEntry, bool) {
	if m.active == nil {
		return domain.TimeEntry{}, false
	}
	return *m.active, true
}

// ActiveID returns the identity of the running entry.
func (m *Machine) ActiveID() (int64, bool) {
	if m.active == nil {
		return 0, false
	}
	return m.active.Identity()
}

// Start begins a new entry. It fails with a conflict error if a timer is already running.
func (m *Machine) Start(ctx context.Context, title, category string) (domain.TimeEntry, error) {
	if m.active != nil {
		return domain.TimeEntry{}, errors.NewConflictError("start timer",
			fmt.Sprintf("%q is already running", m.active.Title))
	}

	saved, err := m.store.Save(ctx, domain.NewTimeEntry(title, category, m.now()))
	if err != nil {
		return domain.TimeEntry{}, err
	}

	m.active = &saved
	id, _ := saved.Identity()
	m.logger.Debug("timer started", logging.FieldID, id)
	return saved, nil
}

// Stop ends the running entry now and persists it. found is false when no
// timer was running or the running entry no longer exists in the store.
func (m *Machine) Stop(ctx context.Context) (entry domain.TimeEntry, found bool, err error) {
	if m.active == nil {
		return domain.TimeEntry{}, false, nil
	}

	id, _ := m.active.Identity()
	current, exists, err := m.store.GetByID(ctx, id)
	if err != nil {
		return domain.TimeEntry{}, false, err
	}
	if !exists {
		m.logger.Warn("running timer disappeared from store", logging.FieldID, id)
		m.active = nil
		return domain.TimeEntry{}, false, nil
	}

	saved, err := m.store.Save(ctx, current.Stop(m.now()))
	if err != nil {
		return domain.TimeEntry{}, false, err
	}

	m.active = nil
	m.logger.Debug("timer stopped", logging.FieldID, id, "minutes", saved.Minutes())
	return saved, true, nil
}

// Pause is Stop. There is no resumable paused state; starting again creates a new entry.
func (m *Machine) Pause(ctx context.Context) (domain.TimeEntry, bool, error) {
	return m.Stop(ctx)
}

// Elapsed returns how long the running entry has been going, or zero when idle.
func (m *Machine) Elapsed() time.Duration {
	if m.active == nil {
		return 0
	}
	elapsed := m.now().Sub(m.active.StartTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ElapsedTime returns Elapsed formatted as HH:MM:SS.
func (m *Machine) ElapsedTime() string {
	return FormatElapsed(m.Elapsed())
}

// Watch calls fn with the formatted elapsed time immediately and then every
// interval until ctx is done.
func (m *Machine) Watch(ctx context.Context, interval time.Duration, fn func(elapsed string)) error {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(m.ElapsedTime())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(m.ElapsedTime())
		}
	}
}

func (m *Machine) now() time.Time {
	return m.clock.Now().UTC()
}

// FormatElapsed renders d as zero-padded HH:MM:SS. Hours keep counting past 23.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
