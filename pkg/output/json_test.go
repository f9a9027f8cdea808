package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestJSONFormatter_Full(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(FormatOptions{})

	if err := f.Format(context.Background(), testReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Summary.TotalMessages != 3 {
		t.Errorf("TotalMessages = %d, want 3", decoded.Summary.TotalMessages)
	}
	if decoded.Span == nil || decoded.Span.Days != 2 {
		t.Errorf("Span = %+v, want Days 2", decoded.Span)
	}
	if len(decoded.Authors) != 2 {
		t.Errorf("Authors = %+v, want 2 entries", decoded.Authors)
	}
}

func TestJSONFormatter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(FormatOptions{Quiet: true})

	if err := f.Format(context.Background(), testReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("quiet output is not a bare summary: %v", err)
	}
	if decoded.TotalMessages != 3 {
		t.Errorf("TotalMessages = %d, want 3", decoded.TotalMessages)
	}
}

func TestJSONFormatter_Name(t *testing.T) {
	if got := NewJSONFormatter(FormatOptions{}).Name(); got != "json" {
		t.Errorf("Name() = %q, want json", got)
	}
}
