package stats

import (
	"testing"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

func TestSymbolFrequency(t *testing.T) {
	msgs := []parser.Message{
		msg(t0916, "Sarah", "Hi John! Great idea 😊"),
	}

	got := SymbolFrequency(msgs)
	if len(got) != 1 || got["😊"] != 1 {
		t.Errorf("SymbolFrequency() = %v, want {😊:1}", got)
	}
}

func TestSymbolFrequency_Repeats(t *testing.T) {
	msgs := []parser.Message{
		msg(t0916, "John", "😂😂 that's great 😂"),
		msg(t0918, "Sarah", "🎉"),
	}

	got := SymbolFrequency(msgs)
	if got["😂"] != 3 {
		t.Errorf("SymbolFrequency()[😂] = %d, want 3", got["😂"])
	}
	if got["🎉"] != 1 {
		t.Errorf("SymbolFrequency()[🎉] = %d, want 1", got["🎉"])
	}
}

func TestSymbolFrequency_MultiCodepointClusters(t *testing.T) {
	msgs := []parser.Message{
		// Thumbs up with skin tone modifier, and a ZWJ family sequence.
		msg(t0916, "John", "👍🏽 nice 👨‍👩‍👧"),
	}

	got := SymbolFrequency(msgs)
	if got["👍🏽"] != 1 {
		t.Errorf("SymbolFrequency()[👍🏽] = %d, want 1 (cluster counted once)", got["👍🏽"])
	}
	if got["👨‍👩‍👧"] != 1 {
		t.Errorf("SymbolFrequency()[👨‍👩‍👧] = %d, want 1 (ZWJ sequence counted once)", got["👨‍👩‍👧"])
	}
	if len(got) != 2 {
		t.Errorf("SymbolFrequency() = %v, want exactly 2 distinct clusters", got)
	}
}

func TestSymbolFrequency_PlainText(t *testing.T) {
	msgs := []parser.Message{
		msg(t0916, "John", "just words, no pictographs: 3/6/24 at 9:16"),
	}

	got := SymbolFrequency(msgs)
	if len(got) != 0 {
		t.Errorf("SymbolFrequency() = %v, want empty", got)
	}
}

func TestSymbolFrequency_DingbatsAndMiscSymbols(t *testing.T) {
	msgs := []parser.Message{
		msg(t0916, "John", "done ✔ and sunny ☀"),
	}

	got := SymbolFrequency(msgs)
	if got["✔"] != 1 {
		t.Errorf("SymbolFrequency()[✔] = %d, want 1", got["✔"])
	}
	if got["☀"] != 1 {
		t.Errorf("SymbolFrequency()[☀] = %d, want 1", got["☀"])
	}
}
