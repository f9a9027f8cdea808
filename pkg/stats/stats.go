// Package stats provides pure aggregation functions over a reconstructed
// message sequence. Every function treats the sequence as an immutable
// view; none of them share state, so they can run in any order.
package stats

import (
	"strings"
	"time"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// Authors returns the distinct author names in first-seen order.
// Duplicates collapse by exact string equality.
func Authors(msgs []parser.Message) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range msgs {
		if !seen[m.Author] {
			seen[m.Author] = true
			out = append(out, m.Author)
		}
	}
	return out
}

// MessageCounts returns the number of messages per author.
func MessageCounts(msgs []parser.Message) map[string]int {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Author]++
	}
	return counts
}

// ByAuthor returns the messages whose author contains the query as a
// substring. An empty query matches every message.
func ByAuthor(author string, msgs []parser.Message) []parser.Message {
	var out []parser.Message
	for _, m := range msgs {
		if strings.Contains(m.Author, author) {
			out = append(out, m)
		}
	}
	return out
}

// OnDate returns the messages whose timestamp falls on the same calendar
// day as date, compared in the timestamp's own location with no timezone
// conversion. Messages with invalid timestamps never match.
func OnDate(date time.Time, msgs []parser.Message) []parser.Message {
	y, mo, d := date.Date()
	var out []parser.Message
	for _, m := range msgs {
		if m.Invalid {
			continue
		}
		my, mmo, md := m.Timestamp.Date()
		if my == y && mmo == mo && md == d {
			out = append(out, m)
		}
	}
	return out
}
