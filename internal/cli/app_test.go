package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-admin/internal/config"
	"my-admin/internal/domain"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/repository/memory"
	"my-admin/internal/services"
	"my-admin/internal/validation"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
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

// harness runs CLI invocations against one in-memory store, as successive
// processes would against the same database.
type harness struct {
	t      *testing.T
	stores *repository.Stores
	clock  *testClock
	input  string
	built  int
}

func newHarness(t *testing.T, now time.Time) *harness {
	t.Helper()
	return &harness{
		t:      t,
		stores: repository.NewStores(memory.New(), logging.Discard()),
		clock:  &testClock{now: now},
	}
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendMemory
	cfg.Time.Timezone = "UTC"
	cfg.Time.DisplayFormat = "2006-01-02 15:04"
	return cfg
}

func (h *harness) factory(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, func() error, error) {
	h.built++
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	container, err := services.NewServiceContainer(ctx, h.stores, services.Options{
		Clock:     h.clock,
		Location:  loc,
		Validator: validation.NewValidatorWithConfig(cfg),
		Logger:    logging.Discard(),
	})
	return container, func() error { return nil }, err
}

func (h *harness) run(args ...string) (string, error) {
	return h.runContext(context.Background(), args...)
}

func (h *harness) runContext(ctx context.Context, args ...string) (string, error) {
	root := NewRootCommand(testConfig(), h.factory)
	var out bytes.Buffer
	cmd := root.Command()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(h.input))
	cmd.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

// mustRun fails the test when the invocation errors.
func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *harness) saveEntry(title string, start time.Time, minutes int) {
	h.t.Helper()
	entry := domain.NewTimeEntry(title, DefaultCategory, start).Stop(start.Add(time.Duration(minutes) * time.Minute))
	_, err := h.stores.TimeEntries.Save(context.Background(), entry)
	require.NoError(h.t, err)
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestParseID(t *testing.T) {
	id, err := parseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := parseID("id", bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2025-03-10 09:30", at(10, 9, 30)},
		{"2025-03-10 09:30:15", at(10, 9, 30).Add(15 * time.Second)},
		{"2025-03-10T09:30", at(10, 9, 30)},
		{"2025-03-10T09:30:00Z", at(10, 9, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDateTime("start", tt.input, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}

	_, err := parseDateTime("start", "yesterday", time.UTC)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("due", "")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("due", "2025-04-01")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.April, 1), *d)

	_, err = parseDate("due", "04/01/2025")
	assert.Error(t, err)
}

func TestApp_Confirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		app := NewApp(nil, testConfig(), &out, strings.NewReader(tt.input))
		assert.Equal(t, tt.expected, app.confirm("Sure?"), "input %q", tt.input)
		assert.Equal(t, "Sure? [y/N]: ", out.String())
	}
}
