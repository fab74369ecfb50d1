// Package result implements the success/failure algebra threaded through
// every parser.
//
// A successful Result carries a value and the stream left after producing it.
// A failed Result carries only a message and a description of where the
// failure happened; it never offers a stream to resume from. Both halves of a
// failure are produced lazily so that alternation can build and discard many
// failures without formatting any of them.
package result

import (
	"fmt"

	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Result is either a success holding a value and the remaining stream, or a
// failure holding a message and context. The zero Result is a failure with an
// empty message.
type Result[T, Seq, Item any] struct {
	ok        bool
	value     T
	remaining stream.Stream[Seq, Item]
	message   func() string
	context   func() string
}

// Success wraps value and the stream left after parsing it.
func Success[T, Seq, Item any](value T, remaining stream.Stream[Seq, Item]) Result[T, Seq, Item] {
	return Result[T, Seq, Item]{ok: true, value: value, remaining: remaining}
}

// Failure records a failure at s. Neither message nor s.ErrorContext is
// called until the failure is inspected.
func Failure[T, Seq, Item any](message func() string, s stream.Stream[Seq, Item]) Result[T, Seq, Item] {
	return Result[T, Seq, Item]{message: message, context: s.ErrorContext}
}

// Failuref is Failure with a deferred fmt.Sprintf message.
func Failuref[T, Seq, Item any](s stream.Stream[Seq, Item], format string, args ...any) Result[T, Seq, Item] {
	return Failure[T](func() string { return fmt.Sprintf(format, args...) }, s)
}

// Map applies f to a success's value and remaining stream. Failures pass
// through unchanged.
func Map[T, U, Seq, Item any](r Result[T, Seq, Item], f func(T, stream.Stream[Seq, Item]) U) Result[U, Seq, Item] {
	if !r.ok {
		return Forward[U](r)
	}
	return Success(f(r.value, r.remaining), r.remaining)
}

// Chain passes a success's value and remaining stream to f and returns what f
// returns. Failures short-circuit.
func Chain[T, U, Seq, Item any](r Result[T, Seq, Item], f func(T, stream.Stream[Seq, Item]) Result[U, Seq, Item]) Result[U, Seq, Item] {
	if !r.ok {
		return Forward[U](r)
	}
	return f(r.value, r.remaining)
}

// IsSuccess reports whether r holds a value.
func (r Result[T, Seq, Item]) IsSuccess() bool {
	return r.ok
}

// Value returns the parsed value and true, or the zero value and false.
func (r Result[T, Seq, Item]) Value() (T, bool) {
	return r.value, r.ok
}

// Remaining returns the stream after a success, or nil for a failure.
func (r Result[T, Seq, Item]) Remaining() stream.Stream[Seq, Item] {
	if !r.ok {
		return nil
	}
	return r.remaining
}

// Message forces and returns the failure message. It is empty for a success.
func (r Result[T, Seq, Item]) Message() string {
	if r.ok || r.message == nil {
		return ""
	}
	return r.message()
}

// Context forces and returns the failure position. It is empty for a success.
func (r Result[T, Seq, Item]) Context() string {
	if r.ok || r.context == nil {
		return ""
	}
	return r.context()
}

// MapFailure replaces a failure's message, keeping its context. Successes are
// returned unchanged.
func (r Result[T, Seq, Item]) MapFailure(message func() string) Result[T, Seq, Item] {
	if r.ok {
		return r
	}
	return Result[T, Seq, Item]{message: message, context: r.context}
}

// ChainFailure returns alternative() when r failed. Since streams are
// immutable, alternative is expected to start from a stream the caller held
// on to before the failed attempt. Successes are returned unchanged.
func (r Result[T, Seq, Item]) ChainFailure(alternative func() Result[T, Seq, Item]) Result[T, Seq, Item] {
	if r.ok {
		return r
	}
	return alternative()
}

// OrElse is ChainFailure.
func (r Result[T, Seq, Item]) OrElse(alternative func() Result[T, Seq, Item]) Result[T, Seq, Item] {
	return r.ChainFailure(alternative)
}

// GetOrElse returns the success value or fallback().
func (r Result[T, Seq, Item]) GetOrElse(fallback func() T) T {
	if r.ok {
		return r.value
	}
	return fallback()
}

// Get returns the success value, or an *Error describing the failure.
func (r Result[T, Seq, Item]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, &Error{Message: r.Message(), Context: r.Context()}
	}
	return r.value, nil
}

// MustGet returns the success value and panics with an *Error on failure.
func (r Result[T, Seq, Item]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[T, Seq, Item]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v) @ %s", r.value, r.remaining.ErrorContext())
	}
	return fmt.Sprintf("Failure(%s %s)", r.Context(), r.Message())
}

// Forward re-types a failure so it can be returned from a parser producing a
// different value type. It panics if r is a success.
func Forward[U, T, Seq, Item any](r Result[T, Seq, Item]) Result[U, Seq, Item] {
	if r.ok {
		panic("result: Forward called on a success")
	}
	return Result[U, Seq, Item]{message: r.message, context: r.context}
}
