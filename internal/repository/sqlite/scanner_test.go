package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []string
	err  error
}

func (ts *TestScanner) Scan(dest ...any) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		*(d.(*string)) = ts.data[i]
	}
	return nil
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows    [][]string
	current int
	err     error
}

func (tr *TestRows) Next() bool {
	tr.current++
	return tr.current <= len(tr.rows)
}

func (tr *TestRows) Scan(dest ...any) error {
	return (&TestScanner{data: tr.rows[tr.current-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanCollection(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *CollectionRow
		expectError bool
	}{
		{
			name:    "valid row",
			scanner: &TestScanner{data: []string{"my-admin-todos", `[]`, "2025-03-10T10:00:00Z"}},
			expected: &CollectionRow{
				Key:       "my-admin-todos",
				Value:     `[]`,
				UpdatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
		{
			name:        "bad timestamp",
			scanner:     &TestScanner{data: []string{"my-admin-todos", `[]`, "yesterday"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanCollection(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Key, result.Key)
			assert.Equal(t, tt.expected.Value, result.Value)
			assert.True(t, tt.expected.UpdatedAt.Equal(result.UpdatedAt))
		})
	}
}

func TestScanCollections(t *testing.T) {
	rows := &TestRows{rows: [][]string{
		{"a", "[]", "2025-03-10T10:00:00Z"},
		{"b", "[1]", "2025-03-11T10:00:00Z"},
	}}

	result, err := ScanCollections(rows)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].Key)
	assert.Equal(t, "[1]", result[1].Value)
}

func TestScanCollections_RowsError(t *testing.T) {
	rows := &TestRows{err: errors.New("cursor closed")}

	_, err := ScanCollections(rows)

	assert.EqualError(t, err, "cursor closed")
}
