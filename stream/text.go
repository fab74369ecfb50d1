package stream

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in a text stream.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TextOption configures a Text stream.
type TextOption func(*Text)

// WithFile names the source the text came from. The name is included in
// error contexts.
func WithFile(name string) TextOption {
	return func(t *Text) {
		t.file = name
	}
}

// Text is a stream of runes over a string. Lines and columns start at 1.
type Text struct {
	src    string
	file   string
	offset int // byte offset into src
	line   int
	col    int
}

var _ Stream[string, rune] = Text{}

// NewText creates a stream positioned at the start of src.
func NewText(src string, opts ...TextOption) Text {
	t := Text{src: src, line: 1, col: 1}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Position returns the current position.
func (t Text) Position() Position {
	return Position{
		File:   t.file,
		Offset: t.offset,
		Line:   t.line,
		Column: t.col,
	}
}

// Remaining returns the unconsumed input.
func (t Text) Remaining() string {
	return t.src[t.offset:]
}

func (t Text) LeadingItem() (rune, bool) {
	if t.offset >= len(t.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.offset:])
	return r, true
}

func (t Text) LeadingSequence(n int) Holder[string] {
	n = floor(n)
	rest := t.src[t.offset:]
	end, count := 0, 0
	for count < n && end < len(rest) {
		_, size := utf8.DecodeRuneInString(rest[end:])
		end += size
		count++
	}
	return Holder[string]{Length: count, Sequence: rest[:end]}
}

func (t Text) LeadingRun(pred func(rune) bool) Holder[string] {
	rest := t.src[t.offset:]
	end, count := 0, 0
	for end < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[end:])
		if !pred(r) {
			break
		}
		end += size
		count++
	}
	return Holder[string]{Length: count, Sequence: rest[:end]}
}

func (t Text) HoldSequence(seq string) Holder[string] {
	return Holder[string]{Length: utf8.RuneCountInString(seq), Sequence: seq}
}

func (t Text) Jump(n int) Stream[string, rune] {
	n = floor(n)
	for ; n > 0 && t.offset < len(t.src); n-- {
		r, size := utf8.DecodeRuneInString(t.src[t.offset:])
		t.offset += size
		if r == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
	}
	return t
}

func (t Text) ErrorContext() string {
	if t.file != "" {
		return fmt.Sprintf("%s (Line: %d, Col: %d)", t.file, t.line, t.col)
	}
	return fmt.Sprintf("(Line: %d, Col: %d)", t.line, t.col)
}
