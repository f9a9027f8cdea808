package stats

import (
	"sort"
	"strings"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// Frequency maps a token to its occurrence count. Keys are unique;
// no ordering is guaranteed.
type Frequency map[string]int

// Entry is one token/count pair from a frequency table.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// WordFrequency counts every whitespace-separated token across all message
// bodies. Tokens are taken verbatim: no case folding, no punctuation
// stripping. Empty tokens are discarded by the split itself.
func WordFrequency(msgs []parser.Message) Frequency {
	freq := make(Frequency)
	for _, m := range msgs {
		for _, token := range strings.Fields(m.Body) {
			freq[token]++
		}
	}
	return freq
}

// Top returns the n highest-count entries of a frequency table, counts
// descending, ties broken by token for deterministic output. n <= 0 or
// n larger than the table returns every entry.
func (f Frequency) Top(n int) []Entry {
	entries := make([]Entry, 0, len(f))
	for token, count := range f {
		entries = append(entries, Entry{Token: token, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
