// Package stream provides immutable, position-tracked views over input
// sequences for use by parser combinators.
//
// A Stream never changes. Advancing it with Jump produces a new value, so a
// parser that wants to try something else from an earlier point simply keeps
// the earlier value around.
package stream

// Holder pairs an extracted subsequence with its length, measured the same
// way the owning stream measures everything else (runes for text, items for
// lists).
type Holder[Seq any] struct {
	Length   int
	Sequence Seq
}

// Stream is the contract every input source satisfies.
//
// All queries are referentially transparent: calling them twice on the same
// value returns the same answer.
type Stream[Seq, Item any] interface {
	// LeadingItem returns the next item, or false when the stream is exhausted.
	LeadingItem() (Item, bool)

	// LeadingSequence returns up to n leading items. Negative n is treated as 0.
	LeadingSequence(n int) Holder[Seq]

	// LeadingRun returns the longest prefix whose items all satisfy pred.
	LeadingRun(pred func(Item) bool) Holder[Seq]

	// HoldSequence measures seq with the stream's own length metric.
	HoldSequence(seq Seq) Holder[Seq]

	// Jump returns a stream advanced by n items. Negative n is a no-op and
	// jumping past the end yields an exhausted stream.
	Jump(n int) Stream[Seq, Item]

	// ErrorContext describes the current position for diagnostics.
	ErrorContext() string
}

func floor(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
