package stream

import (
	"math"
	"slices"
	"testing"
	"unicode"
)

func TestTextLeadingItem(t *testing.T) {
	s := NewText("héllo")
	r, ok := s.LeadingItem()
	if !ok || r != 'h' {
		t.Fatalf("LeadingItem() = %q, %v, want 'h', true", r, ok)
	}
	r, ok = s.Jump(1).LeadingItem()
	if !ok || r != 'é' {
		t.Errorf("LeadingItem() after Jump(1) = %q, %v, want 'é', true", r, ok)
	}

	if _, ok := NewText("").LeadingItem(); ok {
		t.Error("LeadingItem() on empty text reported an item")
	}
}

func TestTextLeadingSequence(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		n      int
		want   string
		length int
	}{
		{"exact", "Hello World", 5, "Hello", 5},
		{"short input", "Hi", 5, "Hi", 2},
		{"negative", "Hello", -3, "", 0},
		{"zero", "Hello", 0, "", 0},
		{"multibyte", "日本語です", 3, "日本語", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewText(tt.input).LeadingSequence(tt.n)
			if h.Sequence != tt.want {
				t.Errorf("Sequence = %q, want %q", h.Sequence, tt.want)
			}
			if h.Length != tt.length {
				t.Errorf("Length = %d, want %d", h.Length, tt.length)
			}
		})
	}
}

func TestTextLeadingRun(t *testing.T) {
	s := NewText("abc123")
	h := s.LeadingRun(unicode.IsLetter)
	if h.Sequence != "abc" || h.Length != 3 {
		t.Errorf("LeadingRun(IsLetter) = %+v, want {3 abc}", h)
	}

	h = s.LeadingRun(unicode.IsDigit)
	if h.Sequence != "" || h.Length != 0 {
		t.Errorf("LeadingRun(IsDigit) = %+v, want empty", h)
	}
}

func TestTextHoldSequence(t *testing.T) {
	h := NewText("").HoldSequence("ñandú")
	if h.Length != 5 {
		t.Errorf("Length = %d, want 5", h.Length)
	}
}

func TestTextJumpTracksLines(t *testing.T) {
	s := NewText("ab\ncd\nef")
	tests := []struct {
		n    int
		line int
		col  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 3},
		{100, 3, 3},
	}

	for _, tt := range tests {
		pos := s.Jump(tt.n).(Text).Position()
		if pos.Line != tt.line || pos.Column != tt.col {
			t.Errorf("Jump(%d) position = %d:%d, want %d:%d", tt.n, pos.Line, pos.Column, tt.line, tt.col)
		}
	}
}

func TestTextJumpIsImmutable(t *testing.T) {
	s := NewText("Hello")
	_ = s.Jump(3)
	if r, _ := s.LeadingItem(); r != 'H' {
		t.Errorf("original stream moved: LeadingItem() = %q, want 'H'", r)
	}
}

func TestTextJumpIsForwardOnly(t *testing.T) {
	s := NewText("Hello")
	back := s.Jump(2).Jump(-2)
	if r, _ := back.LeadingItem(); r != 'l' {
		t.Errorf("Jump(2).Jump(-2) LeadingItem() = %q, want 'l'", r)
	}
	if back.ErrorContext() == s.ErrorContext() {
		t.Errorf("Jump(-2) returned to the original position %s", s.ErrorContext())
	}
}

func TestTextErrorContext(t *testing.T) {
	s := NewText("int x;\nfloat y;").Jump(13)
	if got, want := s.ErrorContext(), "(Line: 2, Col: 7)"; got != want {
		t.Errorf("ErrorContext() = %q, want %q", got, want)
	}

	s = NewText("x", WithFile("decl.txt"))
	if got, want := s.ErrorContext(), "decl.txt (Line: 1, Col: 1)"; got != want {
		t.Errorf("ErrorContext() = %q, want %q", got, want)
	}
}

func TestTextQueriesAreRepeatable(t *testing.T) {
	s := NewText("repeat").Jump(2)
	first := s.LeadingSequence(3)
	second := s.LeadingSequence(3)
	if first != second {
		t.Errorf("LeadingSequence(3) = %+v then %+v", first, second)
	}
}

type flagged struct {
	ch   rune
	flag bool
}

func TestListLeadingRun(t *testing.T) {
	var items []flagged
	for _, r := range "HELLO$WORLD" {
		items = append(items, flagged{ch: r, flag: r != '$'})
	}

	s := NewList(items)
	h := s.LeadingRun(func(f flagged) bool { return f.flag })
	if h.Length != 5 {
		t.Fatalf("Length = %d, want 5", h.Length)
	}
	var got []rune
	for _, f := range h.Sequence {
		got = append(got, f.ch)
	}
	if string(got) != "HELLO" {
		t.Errorf("Sequence = %q, want %q", string(got), "HELLO")
	}
}

func TestListLeadingSequence(t *testing.T) {
	s := NewList([]int{1, 2, 3, 4})
	tests := []struct {
		n    int
		want []int
	}{
		{2, []int{1, 2}},
		{10, []int{1, 2, 3, 4}},
		{-1, []int{}},
	}

	for _, tt := range tests {
		h := s.LeadingSequence(tt.n)
		if !slices.Equal(h.Sequence, tt.want) {
			t.Errorf("LeadingSequence(%d) = %v, want %v", tt.n, h.Sequence, tt.want)
		}
		if h.Length != len(tt.want) {
			t.Errorf("LeadingSequence(%d).Length = %d, want %d", tt.n, h.Length, len(tt.want))
		}
	}
}

func TestListSequenceDoesNotAlias(t *testing.T) {
	items := []int{1, 2, 3, 4}
	h := NewList(items).LeadingSequence(2)
	_ = append(h.Sequence, 99)
	if items[2] != 3 {
		t.Errorf("append to extracted sequence overwrote backing slice: %v", items)
	}
}

func TestListJump(t *testing.T) {
	s := NewList([]string{"a", "b", "c"})

	if got := s.Jump(2).(List[string]).Pos(); got != 2 {
		t.Errorf("Jump(2).Pos() = %d, want 2", got)
	}
	if got := s.Jump(-4).(List[string]).Pos(); got != 0 {
		t.Errorf("Jump(-4).Pos() = %d, want 0", got)
	}
	end := s.Jump(10)
	if _, ok := end.LeadingItem(); ok {
		t.Error("Jump past end left an item")
	}
	if got, want := end.ErrorContext(), "List Stream @ Pos: 3"; got != want {
		t.Errorf("ErrorContext() = %q, want %q", got, want)
	}
	if s.Pos() != 0 {
		t.Errorf("original stream moved to %d", s.Pos())
	}
}

func TestListHugeCounts(t *testing.T) {
	s := NewList([]int{1, 2, 3}).Jump(1)

	end := s.Jump(math.MaxInt)
	if _, ok := end.LeadingItem(); ok {
		t.Error("Jump(MaxInt) left an item")
	}
	if got := end.(List[int]).Pos(); got != 3 {
		t.Errorf("Jump(MaxInt).Pos() = %d, want 3", got)
	}

	h := s.LeadingSequence(math.MaxInt)
	if !slices.Equal(h.Sequence, []int{2, 3}) || h.Length != 2 {
		t.Errorf("LeadingSequence(MaxInt) = %+v, want {2 [2 3]}", h)
	}
}

func TestTextHugeCounts(t *testing.T) {
	s := NewText("abc").Jump(1)

	if _, ok := s.Jump(math.MaxInt).LeadingItem(); ok {
		t.Error("Jump(MaxInt) left an item")
	}
	if h := s.LeadingSequence(math.MaxInt); h.Sequence != "bc" || h.Length != 2 {
		t.Errorf("LeadingSequence(MaxInt) = %+v, want {2 bc}", h)
	}
}
