package stage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the wire format of every stage timestamp.
const TimestampLayout = "2006-01-02T15:04:05Z"

// localLayout parses ISO-8601 values that carry no offset; those are read as UTC.
const localLayout = "2006-01-02T15:04:05"

var (
	iso8601Pattern  = regexp.MustCompile(`^\d{4}-\d\d-\d\dT\d\d:\d\d:\d\d(\.\d+)?(([+-]\d\d:\d\d)|Z)?$`)
	hexColorPattern = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)
)

// IsISO8601 reports whether value has the shape
// YYYY-MM-DDTHH:MM:SS[.fraction][Z|±HH:MM]. Only the format is checked;
// out-of-range components such as month 13 still match.
func IsISO8601(value string) bool {
	return iso8601Pattern.MatchString(value)
}

// IsHexColor reports whether value is a #RRGGBB color, in either case.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// ParseTimestamp parses an ISO-8601 value accepted by IsISO8601 and returns
// it in UTC. Fractional seconds are dropped to match the stored precision.
func ParseTimestamp(value string) (time.Time, error) {
	if !IsISO8601(value) {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: not ISO-8601", value)
	}

	layout := localLayout
	if hasOffset(value) {
		layout = time.RFC3339
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}
	return t.UTC().Truncate(time.Second), nil
}

// FormatTimestamp renders t as YYYY-MM-DDTHH:MM:SSZ in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// IsLaterDate reports whether end falls strictly after start. Values that
// cannot be parsed are never later.
func IsLaterDate(start, end string) bool {
	s, err := ParseTimestamp(start)
	if err != nil {
		return false
	}
	e, err := ParseTimestamp(end)
	if err != nil {
		return false
	}
	return e.After(s)
}

func hasOffset(value string) bool {
	if strings.HasSuffix(value, "Z") {
		return true
	}
	if len(value) < len("+00:00") {
		return false
	}
	sign := value[len(value)-len("+00:00")]
	return sign == '+' || sign == '-'
}
