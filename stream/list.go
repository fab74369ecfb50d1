package stream

import "fmt"

// List is a stream over an ordered collection of tokens.
type List[T any] struct {
	items []T
	pos   int
}

// NewList creates a stream positioned at the first of items. The slice is
// borrowed, not copied, and must not be modified while the stream is in use.
func NewList[T any](items []T) List[T] {
	return List[T]{items: items}
}

// Pos returns the index of the leading item.
func (l List[T]) Pos() int {
	return l.pos
}

func (l List[T]) LeadingItem() (T, bool) {
	if l.pos >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[l.pos], true
}

func (l List[T]) LeadingSequence(n int) Holder[[]T] {
	return l.hold(l.advance(n))
}

func (l List[T]) LeadingRun(pred func(T) bool) Holder[[]T] {
	end := l.pos
	for end < len(l.items) && pred(l.items[end]) {
		end++
	}
	return l.hold(end)
}

// advance returns the index n items ahead, stopping at the end. n is clamped
// before it is added so large counts cannot overflow.
func (l List[T]) advance(n int) int {
	return l.pos + min(floor(n), len(l.items)-l.pos)
}

// hold clips capacity so appending to the result cannot overwrite the
// backing slice.
func (l List[T]) hold(end int) Holder[[]T] {
	return Holder[[]T]{Length: end - l.pos, Sequence: l.items[l.pos:end:end]}
}

func (l List[T]) HoldSequence(seq []T) Holder[[]T] {
	return Holder[[]T]{Length: len(seq), Sequence: seq}
}

func (l List[T]) Jump(n int) Stream[[]T, T] {
	l.pos = l.advance(n)
	return l
}

func (l List[T]) ErrorContext() string {
	return fmt.Sprintf("List Stream @ Pos: %d", l.pos)
}
