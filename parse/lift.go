package parse

import (
	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Map transforms p's value with f.
func Map[T, U, S, I any](p Parser[T, S, I], f func(T) U) Parser[U, S, I] {
	check(p != nil, "Map", "parser")
	check(f != nil, "Map", "function")
	return func(s stream.Stream[S, I]) result.Result[U, S, I] {
		return result.Map(p(s), func(v T, _ stream.Stream[S, I]) U { return f(v) })
	}
}

// Bind runs p and then the parser f builds from p's value, letting later
// parsing depend on earlier values.
func Bind[T, U, S, I any](p Parser[T, S, I], f func(T) Parser[U, S, I]) Parser[U, S, I] {
	check(p != nil, "Bind", "parser")
	check(f != nil, "Bind", "function")
	return func(s stream.Stream[S, I]) result.Result[U, S, I] {
		return result.Chain(p(s), func(v T, rest stream.Stream[S, I]) result.Result[U, S, I] {
			return f(v)(rest)
		})
	}
}

// Succeed consumes nothing and produces v.
func Succeed[T, S, I any](v T) Parser[T, S, I] {
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return result.Success(v, s)
	}
}

// Fail consumes nothing and fails with msg.
func Fail[T, S, I any](msg string) Parser[T, S, I] {
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return result.Failure[T](constant(msg), s)
	}
}

// Label replaces p's failure message with msg.
func Label[T, S, I any](p Parser[T, S, I], msg string) Parser[T, S, I] {
	check(p != nil, "Label", "parser")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return p(s).MapFailure(constant(msg))
	}
}

// Lazy defers building a parser until it runs. It lets a grammar refer to a
// parser that is defined later, which recursive grammars need.
//
//	var expr parse.Parser[string, string, rune]
//	group := parse.Between(parse.Rune('('), parse.Lazy(func() parse.Parser[string, string, rune] { return expr }), parse.Rune(')'))
func Lazy[T, S, I any](f func() Parser[T, S, I]) Parser[T, S, I] {
	check(f != nil, "Lazy", "function")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return f()(s)
	}
}
