package parse

import (
	"github.com/kpatel20538/ParserLib-sub000/builder"
	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// unbounded is the high bound meaning "as many as match".
const unbounded = -1

// collect applies p greedily, appending each value to a fresh builder. Fewer
// than low matches is a failure; matching stops after high matches unless
// high is unbounded. The stream returned is the one after the last match.
func collect[Out, T, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I], low, high int, s stream.Stream[S, I]) result.Result[Out, S, I] {
	b := factory()
	for n := 0; high == unbounded || n < high; n++ {
		r := p(s)
		v, ok := r.Value()
		if !ok {
			if n < low {
				return result.Forward[Out](r)
			}
			break
		}
		b = b.Append(v)
		s = r.Remaining()
	}
	return result.Success(b.Output(), s)
}

func repetition[Out, T, S, I any](name string, factory builder.Factory[Out, T], p Parser[T, S, I], low, high int) Parser[Out, S, I] {
	check(factory != nil, name, "builder factory")
	check(p != nil, name, "parser")
	return func(s stream.Stream[S, I]) result.Result[Out, S, I] {
		return collect(factory, p, low, high, s)
	}
}

// Concatenate runs each of parsers in order and folds their values. It fails
// with the first failure.
func Concatenate[Out, T, S, I any](factory builder.Factory[Out, T], parsers ...Parser[T, S, I]) Parser[Out, S, I] {
	check(factory != nil, "Concatenate", "builder factory")
	for _, p := range parsers {
		check(p != nil, "Concatenate", "parser")
	}
	return func(s stream.Stream[S, I]) result.Result[Out, S, I] {
		b := factory()
		for _, p := range parsers {
			r := p(s)
			v, ok := r.Value()
			if !ok {
				return result.Forward[Out](r)
			}
			b = b.Append(v)
			s = r.Remaining()
		}
		return result.Success(b.Output(), s)
	}
}

// ZeroOrMore applies p until it fails. It always succeeds.
func ZeroOrMore[Out, T, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I]) Parser[Out, S, I] {
	return repetition("ZeroOrMore", factory, p, 0, unbounded)
}

// OneOrMore is ZeroOrMore but fails when p does not match at least once.
func OneOrMore[Out, T, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I]) Parser[Out, S, I] {
	return repetition("OneOrMore", factory, p, 1, unbounded)
}

// Repeat requires exactly count matches of p. A negative count is 0.
func Repeat[Out, T, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I], count int) Parser[Out, S, I] {
	count = max(count, 0)
	return repetition("Repeat", factory, p, count, count)
}

// RangedRepeat requires at least low matches of p and takes at most high.
// Negative bounds are 0 and a high below low is raised to low.
func RangedRepeat[Out, T, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I], low, high int) Parser[Out, S, I] {
	low = max(low, 0)
	high = max(high, low)
	return repetition("RangedRepeat", factory, p, low, high)
}

// Delimited matches zero or more p separated by delim. Delimiter values are
// dropped and a trailing delimiter is left unconsumed.
func Delimited[Out, T, D, S, I any](factory builder.Factory[Out, T], p Parser[T, S, I], delim Parser[D, S, I]) Parser[Out, S, I] {
	check(factory != nil, "Delimited", "builder factory")
	check(p != nil, "Delimited", "parser")
	check(delim != nil, "Delimited", "delimiter parser")
	tail := Prefix(delim, p)
	return func(s stream.Stream[S, I]) result.Result[Out, S, I] {
		first := p(s)
		v, ok := first.Value()
		if !ok {
			return result.Success(factory().Output(), s)
		}
		b := factory().Append(v)
		return collect(wrap(b), tail, 0, unbounded, first.Remaining())
	}
}

// wrap returns a factory yielding b itself, so collect continues an
// accumulation that was started elsewhere.
func wrap[Out, T any](b builder.Builder[Out, T]) builder.Factory[Out, T] {
	return func() builder.Builder[Out, T] { return b }
}
