package parse

import (
	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Prefix runs before and then p, keeping only p's value.
func Prefix[A, T, S, I any](before Parser[A, S, I], p Parser[T, S, I]) Parser[T, S, I] {
	check(before != nil, "Prefix", "before parser")
	check(p != nil, "Prefix", "parser")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return result.Chain(before(s), func(_ A, rest stream.Stream[S, I]) result.Result[T, S, I] {
			return p(rest)
		})
	}
}

// Postfix runs p and then after, keeping only p's value.
func Postfix[T, B, S, I any](p Parser[T, S, I], after Parser[B, S, I]) Parser[T, S, I] {
	check(p != nil, "Postfix", "parser")
	check(after != nil, "Postfix", "after parser")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return result.Chain(p(s), func(v T, rest stream.Stream[S, I]) result.Result[T, S, I] {
			return result.Map(after(rest), func(B, stream.Stream[S, I]) T { return v })
		})
	}
}

// Between runs before, p and after in turn, keeping only p's value.
func Between[A, T, B, S, I any](before Parser[A, S, I], p Parser[T, S, I], after Parser[B, S, I]) Parser[T, S, I] {
	return Prefix(before, Postfix(p, after))
}

// Peek runs p without consuming input. On failure the error is reported at
// the position Peek started from.
func Peek[T, S, I any](p Parser[T, S, I]) Parser[T, S, I] {
	check(p != nil, "Peek", "parser")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		r := p(s)
		if v, ok := r.Value(); ok {
			return result.Success(v, s)
		}
		return result.Failure[T](r.Message, s)
	}
}

// Optional never fails. If p fails, it succeeds with dflt() at the position
// it started from.
func Optional[T, S, I any](p Parser[T, S, I], dflt func() T) Parser[T, S, I] {
	check(p != nil, "Optional", "parser")
	check(dflt != nil, "Optional", "default supplier")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		return p(s).ChainFailure(func() result.Result[T, S, I] {
			return result.Success(dflt(), s)
		})
	}
}

// Omit runs p and replaces its value with placeholder(). Failures pass
// through.
func Omit[T, U, S, I any](p Parser[T, S, I], placeholder func() U) Parser[U, S, I] {
	check(p != nil, "Omit", "parser")
	check(placeholder != nil, "Omit", "placeholder supplier")
	return func(s stream.Stream[S, I]) result.Result[U, S, I] {
		return result.Map(p(s), func(T, stream.Stream[S, I]) U { return placeholder() })
	}
}

// Exception runs p and rejects its value when except reports true. The
// rejection is reported at the position p started from.
func Exception[T, S, I any](p Parser[T, S, I], except func(T) bool, msg string) Parser[T, S, I] {
	check(p != nil, "Exception", "parser")
	check(except != nil, "Exception", "predicate")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		r := p(s)
		if v, ok := r.Value(); ok && except(v) {
			return result.Failure[T](constant(msg), s)
		}
		return r
	}
}
