// Package parse provides parser combinators over immutable streams.
//
// A Parser is a plain function from a stream to a Result. Grammars are built
// by passing parsers to combinators, which return new parsers; nothing runs
// until the outermost parser is handed a stream. Parsers hold no mutable
// state and may be shared between goroutines.
//
// Type parameters follow one convention throughout: T (and U, A, B) is the
// value a parser produces, S is the stream's sequence type and I is its item
// type. For text S is string and I is rune; for a token list of E, S is []E
// and I is E.
//
//	decl := parse.Between(parse.Literal("int "), parse.Letter(), parse.Literal(";"))
//	name, err := parse.CompleteText(decl, "int x;")
//
// Passing a nil parser, predicate or factory to a combinator, or calling
// Alternate with no parsers, panics when the parser is constructed. Numeric
// bounds never panic: negative counts are treated as zero.
package parse

import (
	"fmt"

	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Parser consumes a prefix of a stream and produces a value, or fails.
type Parser[T, S, I any] func(s stream.Stream[S, I]) result.Result[T, S, I]

// Parse runs p against s.
func (p Parser[T, S, I]) Parse(s stream.Stream[S, I]) result.Result[T, S, I] {
	return p(s)
}

// Complete runs p against s and requires that it consume the whole stream.
// A failure is returned as a *result.Error.
func Complete[T, S, I any](p Parser[T, S, I], s stream.Stream[S, I]) (T, error) {
	check(p != nil, "Complete", "parser")
	return Postfix(p, EndOfStream[S, I]())(s).Get()
}

// MustComplete is Complete but panics with a *result.Error on failure.
func MustComplete[T, S, I any](p Parser[T, S, I], s stream.Stream[S, I]) T {
	v, err := Complete(p, s)
	if err != nil {
		panic(err)
	}
	return v
}

// CompleteText runs p over the whole of src.
func CompleteText[T any](p Parser[T, string, rune], src string, opts ...stream.TextOption) (T, error) {
	return Complete(p, stream.Stream[string, rune](stream.NewText(src, opts...)))
}

// CompleteList runs p over the whole of items.
func CompleteList[T, E any](p Parser[T, []E, E], items []E) (T, error) {
	return Complete(p, stream.Stream[[]E, E](stream.NewList(items)))
}

func check(ok bool, combinator, what string) {
	if !ok {
		panic(fmt.Sprintf("parse: %s: nil %s", combinator, what))
	}
}

func constant(msg string) func() string {
	return func() string { return msg }
}
