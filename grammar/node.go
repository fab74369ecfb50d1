package grammar

import (
	"fmt"
	"strings"

	"github.com/kpatel20538/ParserLib-sub000/builder"
	"github.com/kpatel20538/ParserLib-sub000/stream"
)

// Node is one matched production. Text is the input the production matched,
// without any white space skipped in front of its tokens. Lexical productions
// have no children.
type Node struct {
	Name     string          `json:"name"`
	Text     string          `json:"text"`
	Pos      stream.Position `json:"pos"`
	Children []*Node         `json:"children,omitempty"`
}

// Find returns the first node named name in a depth-first walk from n.
func (n *Node) Find(name string) *Node {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s %s %q\n", strings.Repeat("  ", depth), n.Pos, n.Name, n.Text)
	for _, child := range n.Children {
		child.write(sb, depth+1)
	}
}

// fragment is the value of a partially matched expression: the text so far
// and the production nodes found inside it.
type fragment struct {
	text  string
	nodes []*Node
}

func leaf(text string) fragment {
	return fragment{text: text}
}

type fragmentBuilder struct {
	text  strings.Builder
	nodes []*Node
}

func fragments() builder.Builder[fragment, fragment] {
	return &fragmentBuilder{}
}

func (b *fragmentBuilder) Append(f fragment) builder.Builder[fragment, fragment] {
	b.text.WriteString(f.text)
	b.nodes = append(b.nodes, f.nodes...)
	return b
}

func (b *fragmentBuilder) Output() fragment {
	return fragment{text: b.text.String(), nodes: b.nodes}
}
