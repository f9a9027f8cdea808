package stats

import (
	"github.com/rivo/uniseg"

	"github.com/jSchiffart/whatsapp-analytics/pkg/parser"
)

// symbolRange is an inclusive Unicode codepoint range designated as
// symbol/pictograph territory.
type symbolRange struct {
	lo, hi rune
}

// symbolRanges is the declared symbol taxonomy. Membership is by codepoint,
// so the ordering of ranges does not affect counts. Adjust the table, not
// the scanning logic, to change what counts as a symbol.
var symbolRanges = []symbolRange{
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Miscellaneous Symbols and Pictographs
	{0x1F680, 0x1F6FF}, // Transport and Map Symbols
	{0x1F900, 0x1F9FF}, // Supplemental Symbols and Pictographs
	{0x1FA70, 0x1FAFF}, // Symbols and Pictographs Extended-A
	{0x1F1E6, 0x1F1FF}, // Regional Indicator Symbols (flags)
	{0x2600, 0x26FF},   // Miscellaneous Symbols
	{0x2700, 0x27BF},   // Dingbats
	{0x2B00, 0x2BFF},   // Miscellaneous Symbols and Arrows
}

func isSymbolRune(r rune) bool {
	for _, sr := range symbolRanges {
		if r >= sr.lo && r <= sr.hi {
			return true
		}
	}
	return false
}

// SymbolFrequency counts symbol and pictograph occurrences across all
// message bodies. Bodies are scanned by grapheme cluster so multi-codepoint
// emoji (ZWJ sequences, skin tone modifiers, flags) count as one symbol
// each; a cluster counts when any of its codepoints falls in the declared
// ranges, keyed by the full cluster.
func SymbolFrequency(msgs []parser.Message) Frequency {
	freq := make(Frequency)
	for _, m := range msgs {
		g := uniseg.NewGraphemes(m.Body)
		for g.Next() {
			for _, r := range g.Runes() {
				if isSymbolRune(r) {
					freq[g.Str()]++
					break
				}
			}
		}
	}
	return freq
}
