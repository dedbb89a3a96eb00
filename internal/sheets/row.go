package sheets

import (
	"strconv"
	"strings"
)

// Row is one row of raw cell values. Rows come back ragged — trailing empty
// cells are simply absent — so all access goes through bounds-checked
// accessors that default instead of panicking.
type Row []string

// Get returns the cell at index i, or "" when the row is too short.
func (r Row) Get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Lower returns the cell at index i lowercased. Used for email join keys.
func (r Row) Lower(i int) string {
	return strings.ToLower(r.Get(i))
}

// Int parses the leading integer of the cell at index i, returning 0 for
// missing cells or cells with no leading digits. Matches the lenient
// number handling the sheet data was written against.
func (r Row) Int(i int) int {
	s := strings.TrimSpace(r.Get(i))
	if s == "" {
		return 0
	}
	end := 0
	if s[0] == '-' || s[0] == '+' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
