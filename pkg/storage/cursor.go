package storage

import (
	"labelchecker/pkg/serrors"
	"time"
)

// ParseCursor parses a pagination cursor. An empty cursor is the zero time,
// which means the first page.
func ParseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

// FormatCursor renders the next page cursor, or an empty string on the last page.
func FormatCursor(next *time.Time) string {
	if next == nil {
		return ""
	}

	return next.UTC().Format(time.RFC3339Nano)
}
