package output

import (
	"context"
	"fmt"
	"io"

	"github.com/jSchiffart/whatsapp-analytics/pkg/stats"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%d messages, %d authors, %d distinct words, %d distinct symbols\n",
		report.Summary.TotalMessages,
		report.Summary.TotalAuthors,
		report.Summary.DistinctWords,
		report.Summary.DistinctSymbols)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Chat Analytics Report ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Messages: %d\n", report.Summary.TotalMessages)

	if report.Span != nil {
		fmt.Fprintf(w, "From:     %s\n", report.Span.First.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "To:       %s\n", report.Span.Last.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "Span:     %.1f day(s)\n", report.Span.Days)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Authors (%d):\n", report.Summary.TotalAuthors)
	for _, a := range report.Authors {
		fmt.Fprintf(w, "  %-24s %d message(s)\n", a.Name, a.Messages)
	}
	fmt.Fprintln(w)

	f.formatTable(w, "Top words", report.TopWords)
	f.formatTable(w, "Top symbols", report.TopSymbols)

	if f.opts.Verbose {
		re := report.Metadata.Reassembly
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Lines read:         %d\n", re.LinesRead)
		fmt.Fprintf(w, "Headers matched:    %d\n", re.HeadersMatched)
		fmt.Fprintf(w, "Fragments merged:   %d\n", re.FragmentsMerged)
		fmt.Fprintf(w, "Fragments dropped:  %d\n", re.FragmentsDropped)
		fmt.Fprintf(w, "Invalid timestamps: %d\n", re.InvalidTimestamps)
	}

	return nil
}

func (f *TextFormatter) formatTable(w io.Writer, title string, entries []stats.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, e := range entries {
		fmt.Fprintf(w, "  %-16s %d\n", e.Token, e.Count)
	}
	fmt.Fprintln(w)
}
