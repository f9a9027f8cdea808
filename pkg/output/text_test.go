package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

func testMessages() []parser.Message {
	return []parser.Message{
		{
			Timestamp: time.Date(2024, 3, 6, 9, 16, 0, 0, time.UTC),
			Author:    "John Smith",
			Body:      "Hey everyone!",
		},
		{
			Timestamp: time.Date(2024, 3, 6, 9, 18, 0, 0, time.UTC),
			Author:    "Sarah Johnson",
			Body:      "Hi John! Great idea 😊 still there?",
		},
		{
			Timestamp: time.Date(2024, 3, 8, 9, 16, 0, 0, time.UTC),
			Author:    "John Smith",
			Body:      "bump",
		},
	}
}

func testReport() *Report {
	return NewReport(testMessages(), parser.Stats{LinesRead: 4, HeadersMatched: 3, FragmentsMerged: 1}, []string{"chat.txt"}, Options{TopWords: 5, TopSymbols: 5})
}

func TestNewReport(t *testing.T) {
	report := testReport()

	if report.Summary.TotalMessages != 3 {
		t.Errorf("TotalMessages = %d, want 3", report.Summary.TotalMessages)
	}
	if report.Summary.TotalAuthors != 2 {
		t.Errorf("TotalAuthors = %d, want 2", report.Summary.TotalAuthors)
	}
	if len(report.Authors) != 2 || report.Authors[0].Name != "John Smith" || report.Authors[0].Messages != 2 {
		t.Errorf("Authors = %+v", report.Authors)
	}
	if report.Span == nil {
		t.Fatal("Span = nil, want populated")
	}
	if report.Span.Days != 2 {
		t.Errorf("Span.Days = %v, want 2", report.Span.Days)
	}
	if len(report.TopWords) == 0 || len(report.TopWords) > 5 {
		t.Errorf("TopWords = %v, want 1..5 entries", report.TopWords)
	}
	if len(report.TopSymbols) != 1 || report.TopSymbols[0].Token != "😊" {
		t.Errorf("TopSymbols = %v, want just 😊", report.TopSymbols)
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := NewReport(nil, parser.Stats{}, nil, Options{})

	if report.Summary.TotalMessages != 0 {
		t.Errorf("TotalMessages = %d, want 0", report.Summary.TotalMessages)
	}
	if report.Span != nil {
		t.Errorf("Span = %+v, want nil for empty sequence", report.Span)
	}
}

func TestTextFormatter_Full(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})

	if err := f.Format(context.Background(), testReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Chat Analytics Report",
		"Messages: 3",
		"John Smith",
		"Sarah Johnson",
		"2024-03-06 09:16",
		"2.0 day(s)",
		"Top words",
		"Top symbols",
		"😊",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})

	if err := f.Format(context.Background(), testReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "3 messages, 2 authors") {
		t.Errorf("quiet output = %q", out)
	}
	if strings.Contains(out, "Top words") {
		t.Error("quiet output should not contain frequency tables")
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Verbose: true})

	if err := f.Format(context.Background(), testReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Lines read:") || !strings.Contains(out, "Fragments merged:") {
		t.Errorf("verbose output missing reassembly counters:\n%s", out)
	}
}

func TestTextFormatter_Name(t *testing.T) {
	if got := NewTextFormatter(FormatOptions{}).Name(); got != "text" {
		t.Errorf("Name() = %q, want text", got)
	}
}
