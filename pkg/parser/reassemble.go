package parser

// InvalidPolicy decides what happens to a message whose header matched but
// whose timestamp failed to parse.
type InvalidPolicy string

const (
	// InvalidDrop discards the message (and any continuation lines that
	// follow it). This is the default.
	InvalidDrop InvalidPolicy = "drop"

	// InvalidKeep retains the message with a zero timestamp and
	// Invalid set, so downstream consumers can see it happened.
	InvalidKeep InvalidPolicy = "keep"
)

// Stats counts what the reassembler saw during one fold.
type Stats struct {
	// LinesRead is the number of raw lines consumed, empties included.
	LinesRead int

	// HeadersMatched is the number of lines classified as headers.
	HeadersMatched int

	// FragmentsMerged is the number of fragments appended to an open message.
	FragmentsMerged int

	// FragmentsDropped is the number of leading stray fragments discarded
	// because no message had been opened yet.
	FragmentsDropped int

	// InvalidTimestamps is the number of headers whose timestamp failed to
	// parse. Depending on policy these messages were dropped or kept tagged.
	InvalidTimestamps int
}

// Reassembler folds a flat stream of raw lines into a message sequence.
// It is a two-state machine: Idle (no message open) and Open (a message
// accumulating fragments). A header finalizes any open message and opens a
// new one; a fragment extends the open message or, with none open, is
// discarded. End of input flushes the open message.
type Reassembler struct {
	matcher    *HeaderMatcher
	timestamps *TimestampParser
	policy     InvalidPolicy
}

// ReassemblerOption configures a Reassembler.
type ReassemblerOption func(*Reassembler)

// WithInvalidPolicy sets the handling of headers with unparseable timestamps.
func WithInvalidPolicy(p InvalidPolicy) ReassemblerOption {
	return func(r *Reassembler) {
		if p != "" {
			r.policy = p
		}
	}
}

// NewReassembler creates a reassembler using the given matcher and
// timestamp parser.
func NewReassembler(matcher *HeaderMatcher, timestamps *TimestampParser, opts ...ReassemblerOption) *Reassembler {
	r := &Reassembler{
		matcher:    matcher,
		timestamps: timestamps,
		policy:     InvalidDrop,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reassemble runs the fold over raw lines, in input order, and returns the
// completed message sequence. The sequence preserves input order, so a
// chronological export yields a chronological sequence. Reassembly never
// fails: every line is either a header, a fragment, or empty.
func (r *Reassembler) Reassemble(lines []string) ([]Message, Stats) {
	var (
		out     []Message
		current *Message
		stats   Stats
	)

	flush := func() {
		if current == nil {
			return
		}
		if !current.Invalid || r.policy == InvalidKeep {
			out = append(out, *current)
		}
		current = nil
	}

	for _, raw := range lines {
		stats.LinesRead++

		line := NormalizeLine(raw)
		if line == "" {
			continue
		}

		cl := r.matcher.Classify(line)
		switch cl.Kind {
		case KindHeader:
			stats.HeadersMatched++
			flush()

			m := Message{Author: cl.Author, Body: cl.Body}
			ts, err := r.timestamps.Parse(cl.RawTimestamp)
			if err != nil {
				stats.InvalidTimestamps++
				m.Invalid = true
			} else {
				m.Timestamp = ts
			}
			current = &m

		case KindFragment:
			if current == nil {
				stats.FragmentsDropped++
				continue
			}
			stats.FragmentsMerged++
			current.Body += " " + cl.Body
		}
	}

	flush()
	return out, stats
}
