package parse

import (
	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Alternate tries each parser against the same stream, left to right, and
// returns the first success. If every parser fails, the last failure is
// returned. Alternate panics if parsers is empty.
func Alternate[T, S, I any](parsers ...Parser[T, S, I]) Parser[T, S, I] {
	if len(parsers) == 0 {
		panic("parse: Alternate: no parsers to choose from")
	}
	for _, p := range parsers {
		check(p != nil, "Alternate", "parser")
	}
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		r := parsers[0](s)
		for _, p := range parsers[1:] {
			if r.IsSuccess() {
				return r
			}
			r = r.ChainFailure(func() result.Result[T, S, I] { return p(s) })
		}
		return r
	}
}
