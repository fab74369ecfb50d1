package grammar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"

	"github.com/kpatel20538/ParserLib-sub000/stream"
)

const assignments = `
Program    = { Assignment } .
Assignment = ident "=" Value ";" .
Value      = number | ident | List .
List       = "[" [ Value { "," Value } ] "]" .
ident      = letter { letter | digit } .
number     = digit { digit } .
letter     = "a" … "z" .
digit      = "0" … "9" .
`

func mustGrammar(t *testing.T, src string) ebnf.Grammar {
	t.Helper()
	g, err := ebnf.Parse("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func textStream(s string) stream.Stream[string, rune] {
	return stream.NewText(s)
}

func TestMatchSimpleAssignment(t *testing.T) {
	g := mustGrammar(t, assignments)

	root, err := Match(g, "Program", "", "x = 1;", WithWhitespace())
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if root.Name != "Program" {
		t.Errorf("root.Name = %q, want %q", root.Name, "Program")
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}

	assign := root.Children[0]
	if assign.Name != "Assignment" || assign.Text != "x=1;" {
		t.Errorf("assignment = %s %q, want Assignment %q", assign.Name, assign.Text, "x=1;")
	}
	if len(assign.Children) != 2 {
		t.Fatalf("assignment has %d children, want 2", len(assign.Children))
	}
	if ident := assign.Children[0]; ident.Name != "ident" || ident.Text != "x" {
		t.Errorf("first child = %s %q, want ident %q", ident.Name, ident.Text, "x")
	}
	if num := assign.Find("number"); num == nil || num.Text != "1" {
		t.Errorf("Find(number) = %v, want text %q", num, "1")
	}
}

func TestMatchNestedLists(t *testing.T) {
	g := mustGrammar(t, assignments)

	root, err := Match(g, "Program", "", "a = [1, b, [2]];\nc = d;\n", WithWhitespace())
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d assignments, want 2", len(root.Children))
	}

	list := root.Find("List")
	if list == nil {
		t.Fatal("no List node")
	}
	if list.Text != "[1,b,[2]]" {
		t.Errorf("list.Text = %q, want %q", list.Text, "[1,b,[2]]")
	}
	if len(list.Children) != 3 {
		t.Errorf("list has %d values, want 3", len(list.Children))
	}

	second := root.Children[1]
	if second.Pos.Line != 2 {
		t.Errorf("second assignment on line %d, want 2", second.Pos.Line)
	}
}

func TestLexicalNodesAreLeaves(t *testing.T) {
	g := mustGrammar(t, assignments)

	root, err := Match(g, "Program", "", "abc9 = 42;", WithWhitespace())
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	ident := root.Find("ident")
	if ident == nil || ident.Text != "abc9" {
		t.Fatalf("ident = %v, want text %q", ident, "abc9")
	}
	if len(ident.Children) != 0 {
		t.Errorf("lexical node has %d children, want 0", len(ident.Children))
	}
}

func TestMatchWithoutWhitespace(t *testing.T) {
	g := mustGrammar(t, assignments)

	if _, err := Match(g, "Program", "", "x=1;"); err != nil {
		t.Errorf("Match(x=1;) error = %v", err)
	}
	if _, err := Match(g, "Program", "", "x = 1;"); err == nil {
		t.Error("Match(x = 1;) succeeded without white space skipping")
	}
}

func TestMatchFailureReportsPosition(t *testing.T) {
	g := mustGrammar(t, assignments)

	_, err := Match(g, "Program", "in.txt", "x = 1;\ny = ;\n", WithWhitespace())
	if err == nil {
		t.Fatal("Match() succeeded")
	}
	// The repetition stops after the first assignment, so the leftover input
	// is reported where the second one starts.
	if got, want := err.Error(), "in.txt (Line: 2, Col: 1) Expected end of stream"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start string
		want  string
	}{
		{"missing start", assignments, "Nope", `production "Nope" not found`},
		{"unused production", assignments + "Extra = ident .\n", "Program", "verify grammar"},
		{"undefined name", "Program = Missing .\n", "Program", "verify grammar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(mustGrammar(t, tt.src), tt.start)
			if err == nil {
				t.Fatal("Compile() succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Compile() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestOrderedAlternatives(t *testing.T) {
	g := mustGrammar(t, `
Keyword = "for" | "foreach" .
`)
	p, err := Compile(g, "Keyword")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	r := p(textStream("foreach"))
	n, ok := r.Value()
	if !ok {
		t.Fatalf("parse failed: %v", r)
	}
	if n.Text != "for" {
		t.Errorf("Text = %q, want %q", n.Text, "for")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assign.ebnf")
	if err := os.WriteFile(path, []byte(assignments), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := g["Assignment"]; !ok {
		t.Error("loaded grammar has no Assignment production")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.ebnf")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestIsLexical(t *testing.T) {
	tests := map[string]bool{
		"ident":   true,
		"digit":   true,
		"Program": false,
		"List":    false,
	}
	for name, want := range tests {
		if got := IsLexical(name); got != want {
			t.Errorf("IsLexical(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNodeString(t *testing.T) {
	g := mustGrammar(t, assignments)
	root, err := Match(g, "Program", "", "x=y;")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	want := strings.Join([]string{
		`1:1 Program "x=y;"`,
		`  1:1 Assignment "x=y;"`,
		`    1:1 ident "x"`,
		`    1:3 Value "y"`,
		`      1:3 ident "y"`,
		``,
	}, "\n")
	if got := root.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
