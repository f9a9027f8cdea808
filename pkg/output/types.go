// Package output provides report building and formatting for chat
// analytics results.
package output

import (
	"time"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
	"github.com/jSchiffart/whatsapp-analytics/pkg/stats"
)

// Report is the complete analytics output for one run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Authors lists participants with their message counts,
	// in order of first appearance.
	Authors []AuthorActivity `json:"authors"`

	// Span describes the conversation's temporal extent.
	// Nil when no message carried a valid timestamp.
	Span *Span `json:"span,omitempty"`

	// TopWords are the most frequent body tokens.
	TopWords []stats.Entry `json:"top_words,omitempty"`

	// TopSymbols are the most frequent symbol/emoji clusters.
	TopSymbols []stats.Entry `json:"top_symbols,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalMessages is the number of reconstructed messages.
	TotalMessages int `json:"total_messages"`

	// TotalAuthors is the number of distinct participants.
	TotalAuthors int `json:"total_authors"`

	// DistinctWords is the number of distinct body tokens.
	DistinctWords int `json:"distinct_words"`

	// DistinctSymbols is the number of distinct symbol clusters.
	DistinctSymbols int `json:"distinct_symbols"`
}

// AuthorActivity is one participant's message count.
type AuthorActivity struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"`
}

// Span is the elapsed time between the first and last message.
type Span struct {
	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
	Days  float64   `json:"days"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the export files that were read.
	Sources []string `json:"sources"`

	// AnalyzedAt is when the report was produced.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Reassembly counts what the reassembler saw.
	Reassembly parser.Stats `json:"reassembly"`
}

// Options controls how much of the frequency tables a report carries.
type Options struct {
	// TopWords caps the word table (0 means everything).
	TopWords int

	// TopSymbols caps the symbol table (0 means everything).
	TopSymbols int
}

// NewReport runs the aggregators over a message sequence and assembles
// the report.
func NewReport(msgs []parser.Message, reStats parser.Stats, sources []string, opts Options) *Report {
	authors := stats.Authors(msgs)
	counts := stats.MessageCounts(msgs)
	words := stats.WordFrequency(msgs)
	symbols := stats.SymbolFrequency(msgs)

	report := &Report{
		Summary: Summary{
			TotalMessages:   len(msgs),
			TotalAuthors:    len(authors),
			DistinctWords:   len(words),
			DistinctSymbols: len(symbols),
		},
		TopWords:   words.Top(opts.TopWords),
		TopSymbols: symbols.Top(opts.TopSymbols),
		Metadata: Metadata{
			Sources:    sources,
			AnalyzedAt: time.Now(),
			Reassembly: reStats,
		},
	}

	for _, name := range authors {
		report.Authors = append(report.Authors, AuthorActivity{
			Name:     name,
			Messages: counts[name],
		})
	}

	first, err := stats.FirstTimestamp(msgs)
	if err == nil {
		// LastTimestamp cannot fail once FirstTimestamp succeeded.
		last, _ := stats.LastTimestamp(msgs)
		days, _ := stats.DurationIn(stats.UnitDays, msgs)
		report.Span = &Span{First: first, Last: last, Days: days}
	}

	return report
}
