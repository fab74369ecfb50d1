// Package grammar turns EBNF grammars into parsers.
//
// Grammars use the notation of golang.org/x/exp/ebnf. Compile translates each
// production into combinators from package parse and returns a parser that
// produces a tree of Nodes over a text stream.
//
// Productions whose names start with a lower-case letter are lexical: they
// match characters exactly and produce leaf nodes. Other productions produce
// nodes with one child per production they reference and, with
// WithWhitespace, skip white space in front of every token and lexical
// reference. Alternatives are ordered; the first one that matches wins.
package grammar

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"

	"github.com/kpatel20538/ParserLib-sub000/parse"
	"github.com/kpatel20538/ParserLib-sub000/result"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

var log = commonlog.GetLogger("pcl.grammar")

// textParser is the parser shape every compiled expression has.
type textParser = parse.Parser[fragment, string, rune]

// Option configures Compile.
type Option func(*compiler)

// WithWhitespace skips white space between the tokens of non-lexical
// productions, and before and after the whole input.
func WithWhitespace() Option {
	return func(c *compiler) {
		c.whitespace = true
	}
}

// WithTrace logs every production attempt at debug level.
func WithTrace() Option {
	return func(c *compiler) {
		c.trace = true
	}
}

// Load reads and parses an EBNF grammar file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Compile verifies g from the start production and returns a parser for it.
func Compile(g ebnf.Grammar, start string, opts ...Option) (parse.Parser[*Node, string, rune], error) {
	if prod, ok := g[start]; !ok || prod == nil {
		return nil, fmt.Errorf("production %q not found in grammar", start)
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	c := &compiler{productions: make(map[string]textParser, len(g))}
	for _, opt := range opts {
		opt(c)
	}
	for name, prod := range g {
		c.productions[name] = c.production(name, prod)
	}
	log.Debugf("compiled %d productions, start %q", len(c.productions), start)

	root := parse.Map(c.productions[start], func(f fragment) *Node { return f.nodes[0] })
	if c.whitespace {
		root = parse.Between(parse.Spaces(), root, parse.Spaces())
	}
	return root, nil
}

// Match compiles g and parses all of src with it.
func Match(g ebnf.Grammar, start, filename, src string, opts ...Option) (*Node, error) {
	p, err := Compile(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return parse.CompleteText(p, src, stream.WithFile(filename))
}

type compiler struct {
	productions map[string]textParser
	whitespace  bool
	trace       bool
}

// IsLexical reports whether name is a lexical production.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

func (c *compiler) production(name string, prod *ebnf.Production) textParser {
	lexical := IsLexical(name)
	body := c.expr(prod.Expr, lexical)

	var p textParser = func(s stream.Stream[string, rune]) result.Result[fragment, string, rune] {
		if c.whitespace && !lexical {
			s = s.Jump(s.LeadingRun(unicode.IsSpace).Length)
		}
		pos := position(s)
		return result.Map(body(s), func(f fragment, _ stream.Stream[string, rune]) fragment {
			n := &Node{Name: name, Text: f.text, Pos: pos}
			if !lexical {
				n.Children = f.nodes
			}
			return fragment{text: f.text, nodes: []*Node{n}}
		})
	}
	if c.trace {
		p = parse.Trace(name, p)
	}
	return p
}

func (c *compiler) expr(e ebnf.Expression, lexical bool) textParser {
	switch e := e.(type) {
	case nil:
		return parse.Succeed[fragment, string, rune](fragment{})

	case *ebnf.Token:
		return c.skip(parse.Map(parse.Literal(e.String), leaf), lexical)

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		return parse.Map(parse.RuneRange(lo, hi), func(r rune) fragment { return leaf(string(r)) })

	case ebnf.Alternative:
		alts := make([]textParser, len(e))
		for i, alt := range e {
			alts[i] = c.expr(alt, lexical)
		}
		return parse.Alternate(alts...)

	case ebnf.Sequence:
		seq := make([]textParser, len(e))
		for i, item := range e {
			seq[i] = c.expr(item, lexical)
		}
		return parse.Concatenate(fragments, seq...)

	case *ebnf.Group:
		return c.expr(e.Body, lexical)

	case *ebnf.Option:
		return parse.Optional(c.expr(e.Body, lexical), func() fragment { return fragment{} })

	case *ebnf.Repetition:
		return parse.ZeroOrMore(fragments, c.expr(e.Body, lexical))

	case *ebnf.Name:
		name := e.String
		ref := parse.Lazy(func() textParser { return c.productions[name] })
		if IsLexical(name) {
			return c.skip(ref, lexical)
		}
		return ref

	default:
		return parse.Fail[fragment, string, rune](fmt.Sprintf("Unsupported grammar expression %T", e))
	}
}

// skip prefixes p with white space skipping when that is enabled and p is
// used from a non-lexical production.
func (c *compiler) skip(p textParser, lexical bool) textParser {
	if !c.whitespace || lexical {
		return p
	}
	return parse.Prefix(parse.Spaces(), p)
}

func position(s stream.Stream[string, rune]) stream.Position {
	if t, ok := s.(stream.Text); ok {
		return t.Position()
	}
	return stream.Position{}
}
