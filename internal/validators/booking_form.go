package validators

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006-1-2"}

var timeLayouts = []string{"15:04", "15:04:05", "3:04PM"}

// CanonicalDate normalizes a form date to YYYY-MM-DD.
func CanonicalDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date %q", s)
}

// CanonicalTime normalizes a form time of day to 24-hour HH:mm, dropping
// seconds.
func CanonicalTime(s string) (string, error) {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", s)
}
