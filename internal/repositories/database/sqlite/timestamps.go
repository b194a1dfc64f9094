package sqlite

import (
	"fmt"
	"time"
)

// timeLayout is fixed-width UTC so lexical order in TEXT columns equals time order.
// It matches strftime('%Y-%m-%dT%H:%M:%f000Z') used for column defaults.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows written by other tools may use SQLite's own datetime() format.
		if t2, err2 := time.Parse("2006-01-02 15:04:05", s); err2 == nil {
			return t2.UTC(), nil
		}
		return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", s, err)
	}
	return t, nil
}
