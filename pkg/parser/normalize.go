package parser

import "strings"

// NormalizeLine strips embedded newline characters and surrounding
// whitespace from a raw line. Normalization is total: any input string
// produces a result, possibly empty. Empty results are excluded from
// classification by the caller.
func NormalizeLine(raw string) string {
	raw = strings.ReplaceAll(raw, "\r", "")
	raw = strings.ReplaceAll(raw, "\n", "")
	return strings.TrimSpace(raw)
}
