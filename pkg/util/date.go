package util

import "time"

var eventTimeLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// ParseEventTime parses feed timestamps. The FOMC calendar publishes
// RFC3339 (`start` elements), the speech feed RFC1123 (`pubDate`).
// Returns (t, true) if any known layout worked.
func ParseEventTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
