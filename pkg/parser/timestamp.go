package parser

import (
	"fmt"
	"time"
)

// Default Go time layouts for the export's timestamp substring.
// Numeric month, day, 2- or 4-digit year, comma, 24-hour hour:minute.
const (
	DefaultTimestampLayout     = "1/2/06, 15:04"
	DefaultTimestampLayoutLong = "1/2/2006, 15:04"
)

// TimestampParser parses header timestamp substrings under a fixed set of
// declared layouts, tried in order.
type TimestampParser struct {
	layouts []string
}

// NewTimestampParser creates a parser for the given layouts. With no
// layouts it uses the default short- and long-year WhatsApp layouts.
func NewTimestampParser(layouts ...string) *TimestampParser {
	if len(layouts) == 0 {
		layouts = []string{DefaultTimestampLayout, DefaultTimestampLayoutLong}
	}
	return &TimestampParser{layouts: layouts}
}

// Parse converts a raw timestamp substring into an absolute time.
// Returns the zero time and an error when no layout accepts the substring,
// including syntactically well-formed values with impossible numeric ranges
// (month 13, day 32, hour 25). It never substitutes a different date.
func (p *TimestampParser) Parse(raw string) (time.Time, error) {
	var err error
	for _, layout := range p.layouts {
		var ts time.Time
		ts, err = time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
}
