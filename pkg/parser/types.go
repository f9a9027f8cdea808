// Package parser reconstructs structured chat messages from a plain-text
// WhatsApp export. It classifies each line as a message header or a
// continuation fragment and folds the line stream into a message sequence.
package parser

import "time"

// Message is a single reconstructed chat message.
type Message struct {
	// Timestamp is the parsed message timestamp.
	// Zero when Invalid is true.
	Timestamp time.Time `json:"timestamp"`

	// Author is the sender name exactly as it appeared in the export,
	// with no normalization applied.
	Author string `json:"author"`

	// Body is the message text. Continuation lines are joined to the
	// header's inline body with single spaces.
	Body string `json:"body"`

	// Invalid marks a message whose header matched but whose timestamp
	// was numerically impossible (month 13, hour 25). Only set under the
	// keep-invalid policy; the drop policy never emits such a message.
	Invalid bool `json:"invalid,omitempty"`
}

// LineKind discriminates the two shapes a normalized line can take.
type LineKind int

const (
	// KindHeader is a line opening a new message:
	// timestamp, author, and inline body.
	KindHeader LineKind = iota

	// KindFragment is any line that does not match the header shape.
	// It belongs, in full, to the most recently opened message.
	KindFragment
)

// ClassifiedLine is the result of matching one normalized line against the
// header pattern. Header fields are populated only when Kind is KindHeader;
// Body is populated for both kinds.
type ClassifiedLine struct {
	Kind LineKind

	// RawTimestamp is the unparsed timestamp substring (headers only).
	RawTimestamp string

	// Author is the captured author substring (headers only).
	Author string

	// Body is the inline body for headers, or the entire normalized
	// line for fragments.
	Body string
}
