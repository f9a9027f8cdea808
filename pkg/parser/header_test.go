package parser

import (
	"regexp"
	"testing"
)

func mustMatcher(t *testing.T) *HeaderMatcher {
	t.Helper()
	m, err := NewHeaderMatcher(regexp.MustCompile(DefaultHeaderPattern))
	if err != nil {
		t.Fatalf("NewHeaderMatcher() error = %v", err)
	}
	return m
}

func TestHeaderMatcher_Classify(t *testing.T) {
	matcher := mustMatcher(t)

	tests := []struct {
		name          string
		line          string
		wantKind      LineKind
		wantTimestamp string
		wantAuthor    string
		wantBody      string
	}{
		{
			name:          "simple header",
			line:          "3/6/24, 09:16 - John Smith: Hey everyone!",
			wantKind:      KindHeader,
			wantTimestamp: "3/6/24, 09:16",
			wantAuthor:    "John Smith",
			wantBody:      "Hey everyone!",
		},
		{
			name:          "four digit year",
			line:          "12/31/2023, 23:59 - Sarah: happy new year",
			wantKind:      KindHeader,
			wantTimestamp: "12/31/2023, 23:59",
			wantAuthor:    "Sarah",
			wantBody:      "happy new year",
		},
		{
			name:          "single digit hour",
			line:          "3/6/24, 9:16 - John: early",
			wantKind:      KindHeader,
			wantTimestamp: "3/6/24, 9:16",
			wantAuthor:    "John",
			wantBody:      "early",
		},
		{
			name:          "empty inline body after normalization",
			line:          "3/6/24, 09:16 - John:",
			wantKind:      KindHeader,
			wantTimestamp: "3/6/24, 09:16",
			wantAuthor:    "John",
			wantBody:      "",
		},
		{
			name:          "colon inside body",
			line:          "3/6/24, 09:16 - John: note: buy milk",
			wantKind:      KindHeader,
			wantTimestamp: "3/6/24, 09:16",
			wantAuthor:    "John",
			wantBody:      "note: buy milk",
		},
		{
			name:          "header shape embedded in body is not reparsed",
			line:          "3/6/24, 09:16 - John: see 4/1/24, 10:00 - Sarah: earlier",
			wantKind:      KindHeader,
			wantTimestamp: "3/6/24, 09:16",
			wantAuthor:    "John",
			wantBody:      "see 4/1/24, 10:00 - Sarah: earlier",
		},
		{
			name:     "plain continuation",
			line:     "still there?",
			wantKind: KindFragment,
			wantBody: "still there?",
		},
		{
			name:     "date-like substring mid-line",
			line:     "meeting moved to 3/6/24, 09:16 ok?",
			wantKind: KindFragment,
			wantBody: "meeting moved to 3/6/24, 09:16 ok?",
		},
		{
			name:     "timestamp without author separator",
			line:     "3/6/24, 09:16 no dash here",
			wantKind: KindFragment,
			wantBody: "3/6/24, 09:16 no dash here",
		},
		{
			name:     "missing colon after author",
			line:     "3/6/24, 09:16 - John Smith added Sarah",
			wantKind: KindFragment,
			wantBody: "3/6/24, 09:16 - John Smith added Sarah",
		},
		{
			name:     "time with seconds does not match",
			line:     "3/6/24, 09:16:33 - John: hi",
			wantKind: KindFragment,
			wantBody: "3/6/24, 09:16:33 - John: hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.Classify(tt.line)
			if got.Kind != tt.wantKind {
				t.Fatalf("Classify() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.RawTimestamp != tt.wantTimestamp {
				t.Errorf("Classify() timestamp = %q, want %q", got.RawTimestamp, tt.wantTimestamp)
			}
			if got.Author != tt.wantAuthor {
				t.Errorf("Classify() author = %q, want %q", got.Author, tt.wantAuthor)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Classify() body = %q, want %q", got.Body, tt.wantBody)
			}
		})
	}
}

func TestNewHeaderMatcher_GroupCount(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{
			name:    "default pattern",
			pattern: DefaultHeaderPattern,
			wantErr: false,
		},
		{
			name:    "too few groups",
			pattern: `^(\d+) - (.*)$`,
			wantErr: true,
		},
		{
			name:    "too many groups",
			pattern: `^(\d+)/(\d+) - ([^:]+): (.*)$`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHeaderMatcher(regexp.MustCompile(tt.pattern))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewHeaderMatcher() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
