package parser

import (
	"testing"
	"time"
)

func TestTimestampParser_Parse(t *testing.T) {
	p := NewTimestampParser()

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "two digit year",
			raw:  "3/6/24, 09:16",
			want: time.Date(2024, 3, 6, 9, 16, 0, 0, time.UTC),
		},
		{
			name: "four digit year",
			raw:  "3/6/2024, 09:16",
			want: time.Date(2024, 3, 6, 9, 16, 0, 0, time.UTC),
		},
		{
			name: "single digit hour",
			raw:  "12/31/23, 7:05",
			want: time.Date(2023, 12, 31, 7, 5, 0, 0, time.UTC),
		},
		{
			name:    "month out of range",
			raw:     "13/6/24, 09:16",
			wantErr: true,
		},
		{
			name:    "day out of range",
			raw:     "3/32/24, 09:16",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			raw:     "3/6/24, 25:16",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			raw:     "3/6/24, 09:61",
			wantErr: true,
		},
		{
			name:    "not a timestamp",
			raw:     "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !got.IsZero() {
					t.Errorf("Parse() = %v, want zero time on error", got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimestampParser_CustomLayout(t *testing.T) {
	p := NewTimestampParser("02/01/2006, 15:04")

	got, err := p.Parse("06/03/2024, 09:16")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := time.Date(2024, 3, 6, 9, 16, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}
