package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a date string in "2006-01-02", RFC3339, or SQLite
// datetime format. Kept local to the repository layer to avoid cross-layer
// imports.
func ParseTime(str string) (time.Time, error) {
	layouts := []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

	var err error
	for _, layout := range layouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, str)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
}
