package lsp

import (
	"errors"
	"strconv"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/kpatel20538/ParserLib-sub000/builder"
	"github.com/kpatel20538/ParserLib-sub000/parse"
	"github.com/kpatel20538/ParserLib-sub000/result"
)

// location reads the line and column out of a text stream error context such
// as "file.txt (Line: 3, Col: 7)". Numbers that do not fit a 32-bit position
// are rejected.
var location = func() parse.Parser[[]int, string, rune] {
	number := parse.Bind(parse.Digits(), func(s string) parse.Parser[int, string, rune] {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return parse.Fail[int, string, rune]("Position out of range")
		}
		return parse.Succeed[int, string, rune](int(n))
	})
	lineCol := parse.Concatenate(builder.List[int],
		parse.Prefix(parse.Literal("(Line: "), number),
		parse.Between(parse.Literal(", Col: "), number, parse.Rune(')')),
	)
	name := parse.OptionalRun[string](func(r rune) bool { return r != '(' })
	return parse.Prefix(name, lineCol)
}()

// Diagnose converts the error from checking a document into diagnostics. A
// nil error yields an empty list, which clears earlier diagnostics.
func Diagnose(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	message, context := err.Error(), ""
	var perr *result.Error
	if errors.As(err, &perr) {
		message, context = perr.Message, perr.Context
	}

	var line, col protocol.UInteger
	if lc, err := parse.CompleteText(location, context); err == nil {
		line, col = zeroBased(lc[0]), zeroBased(lc[1])
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}}
}

func zeroBased(n int) protocol.UInteger {
	if n < 1 {
		return 0
	}
	return protocol.UInteger(n - 1)
}
