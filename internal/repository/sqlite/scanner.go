package sqlite

import "fmt"

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// ScanCollection scans a single collection row (key, value, updated_at)
func ScanCollection(scanner Scanner) (*CollectionRow, error) {
	row := &CollectionRow{}
	var updatedAt string

	if err := scanner.Scan(&row.Key, &row.Value, &updatedAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("collection %s: invalid updated_at %q: %w", row.Key, updatedAt, err)
	}
	row.UpdatedAt = t

	return row, nil
}

// ScanCollections scans every collection row
func ScanCollections(rows Rows) ([]*CollectionRow, error) {
	var out []*CollectionRow
	for rows.Next() {
		row, err := ScanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
