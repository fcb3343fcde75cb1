// Package timestamp formats and parses the fixed local-time strings stored
// in the database (YYYY-MM-DD HH:MM:SS, second precision).
package timestamp

import (
	"log"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	Layout = "2006-01-02 15:04:05"

	// NotYetUpdated is displayed when a timestamp is absent or unparseable.
	NotYetUpdated = "Not yet updated"

	DefaultZone = "Asia/Tokyo"
)

// jst is used when the zone database has no entry for the configured name.
var jst = time.FixedZone("JST", 9*60*60)

// LoadLocation resolves a zone name, falling back to JST.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown time zone %q, using JST: %v", name, err)
		return jst
	}
	return loc
}

// Format renders t in loc using Layout.
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Parse reads a stored timestamp. It never fails loudly; ok is false for
// malformed or empty input.
func Parse(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Display returns the normalized timestamp for display, or NotYetUpdated.
// The stored value itself is never rewritten.
func Display(raw *string, loc *time.Location) string {
	if raw == nil {
		return NotYetUpdated
	}
	t, ok := Parse(*raw, loc)
	if !ok {
		return NotYetUpdated
	}
	return t.Format(Layout)
}
