package parse

import (
	"github.com/tliron/commonlog"

	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

var log = commonlog.GetLogger("pcl.parse")

// Trace logs entry to p and its outcome at debug level under name.
func Trace[T, S, I any](name string, p Parser[T, S, I]) Parser[T, S, I] {
	check(p != nil, "Trace", "parser")
	return func(s stream.Stream[S, I]) result.Result[T, S, I] {
		if !log.AllowLevel(commonlog.Debug) {
			return p(s)
		}
		log.Debugf("%s: enter at %s", name, s.ErrorContext())
		r := p(s)
		if r.IsSuccess() {
			log.Debugf("%s: matched, continuing at %s", name, r.Remaining().ErrorContext())
		} else {
			log.Debugf("%s: failed at %s: %s", name, r.Context(), r.Message())
		}
		return r
	}
}
