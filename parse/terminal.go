package parse

import (
	"slices"

	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Item matches one leading item satisfying pred.
func Item[S, I any](pred func(I) bool, msg string) Parser[I, S, I] {
	check(pred != nil, "Item", "predicate")
	return func(s stream.Stream[S, I]) result.Result[I, S, I] {
		if it, ok := s.LeadingItem(); ok && pred(it) {
			return result.Success(it, s.Jump(1))
		}
		return result.Failure[I](constant(msg), s)
	}
}

// Value matches one leading item equal to v.
func Value[S any, I comparable](v I, msg string) Parser[I, S, I] {
	return Item[S](func(it I) bool { return it == v }, msg)
}

// OneOf matches one leading item contained in set.
func OneOf[S any, I comparable](set []I, msg string) Parser[I, S, I] {
	return Item[S](func(it I) bool { return slices.Contains(set, it) }, msg)
}

// Sequence matches target exactly, comparing with equal. Nothing is consumed
// on failure.
func Sequence[S, I any](target S, equal func(a, b S) bool, msg string) Parser[S, S, I] {
	check(equal != nil, "Sequence", "equality function")
	return func(s stream.Stream[S, I]) result.Result[S, S, I] {
		n := s.HoldSequence(target).Length
		got := s.LeadingSequence(n)
		if got.Length != n || !equal(got.Sequence, target) {
			return result.Failure[S](constant(msg), s)
		}
		return result.Success(got.Sequence, s.Jump(n))
	}
}

// EndOfStream succeeds without consuming anything when s is exhausted.
func EndOfStream[S, I any]() Parser[struct{}, S, I] {
	return func(s stream.Stream[S, I]) result.Result[struct{}, S, I] {
		if _, ok := s.LeadingItem(); ok {
			return result.Failure[struct{}](constant("Expected end of stream"), s)
		}
		return result.Success(struct{}{}, s)
	}
}

// OptionalRun consumes the longest prefix of items satisfying pred. It always
// succeeds, possibly with an empty sequence.
func OptionalRun[S, I any](pred func(I) bool) Parser[S, S, I] {
	check(pred != nil, "OptionalRun", "predicate")
	return func(s stream.Stream[S, I]) result.Result[S, S, I] {
		h := s.LeadingRun(pred)
		return result.Success(h.Sequence, s.Jump(h.Length))
	}
}

// Run is OptionalRun that requires at least one matching item. When none
// matches it fails with msg and consumes nothing.
func Run[S, I any](pred func(I) bool, msg string) Parser[S, S, I] {
	return Prefix(Peek(Item[S](pred, msg)), OptionalRun[S](pred))
}
