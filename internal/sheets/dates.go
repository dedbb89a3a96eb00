package sheets

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The sheets record dates day-first: D/M/YYYY with an optional H:M or
// H:M:S tail. 25/12/2024 is Christmas, not a parse error.
var dayFirstPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?$`)

// Layouts tried for anything that is not day-first. Order matters: the
// most specific first.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseTimestamp parses a sheet timestamp string into a UTC instant.
// Day-first forms take precedence over everything else; generic layouts
// are a fallback. Returns false when nothing matches.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayFirstPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		hour := atoiOrZero(m[4])
		minute := atoiOrZero(m[5])
		second := atoiOrZero(m[6])
		return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), true
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeDate converts a heterogeneous sheet date string into a canonical
// RFC 3339 timestamp. Blank input yields ""; unparseable input passes
// through so callers can still display the raw value.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if t, ok := ParseTimestamp(s); ok {
		return t.Format(time.RFC3339)
	}
	return s
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
