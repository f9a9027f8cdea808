package parser

import (
	"fmt"
	"regexp"
)

// DefaultHeaderPattern matches a WhatsApp export message header:
//
//	M/D/YY, H:MM - Author Name: message body
//
// Three capture groups: timestamp, author, inline body. The author group
// excludes colons; the body is everything after the author's colon and may
// be empty (normalization strips the trailing space of an empty body, so
// the separating space is optional). The match is anchored at both ends,
// so a line that merely contains a date-like substring or a colon mid-line
// is a fragment, in full.
const DefaultHeaderPattern = `^(\d{1,2}/\d{1,2}/\d{2,4}, \d{1,2}:\d{2}) - ([^:]+): ?(.*)$`

// HeaderMatcher classifies normalized lines against the header pattern.
type HeaderMatcher struct {
	pattern *regexp.Regexp
}

// NewHeaderMatcher creates a matcher from a compiled header pattern.
// The pattern must have exactly three capture groups, in order:
// timestamp, author, inline body.
func NewHeaderMatcher(pattern *regexp.Regexp) (*HeaderMatcher, error) {
	if n := pattern.NumSubexp(); n != 3 {
		return nil, fmt.Errorf("header pattern must have 3 capture groups (timestamp, author, body), got %d", n)
	}
	return &HeaderMatcher{pattern: pattern}, nil
}

// Classify matches one normalized line. A full match produces a header
// classification carrying the three captured substrings; anything else is
// a fragment whose body is the entire line. Classification never fails:
// the format's ambiguity is resolved by construction, not by error.
func (m *HeaderMatcher) Classify(line string) ClassifiedLine {
	groups := m.pattern.FindStringSubmatch(line)
	if groups == nil {
		return ClassifiedLine{Kind: KindFragment, Body: line}
	}
	return ClassifiedLine{
		Kind:         KindHeader,
		RawTimestamp: groups[1],
		Author:       groups[2],
		Body:         groups[3],
	}
}
