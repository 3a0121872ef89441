package utils

import (
	"fmt"
	"time"
)

const (
	// StampLayout is the minutes-precision wire format accepted in
	// show-creation payloads.
	StampLayout = "2006-01-02 15:04"

	payloadLayout = "2006-01-02 15:04:05"

	mediumLayout = "Mon Jan 02, 2006 3:04PM"
	fullLayout   = "Monday January 2, 2006 at 3:04PM"
)

// ParseStartTime accepts the timestamp forms clients send for show
// start times: "2006-01-02 15:04:05", the same without seconds, or
// RFC 3339.
func ParseStartTime(value string) (time.Time, error) {
	for _, layout := range []string{payloadLayout, StampLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start_time %q", value)
}

// FormatMedium renders a timestamp in the medium display format.
func FormatMedium(t time.Time) string {
	return t.Format(mediumLayout)
}

// FormatFull renders a timestamp in the full display format.
func FormatFull(t time.Time) string {
	return t.Format(fullLayout)
}
