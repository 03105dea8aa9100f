package regexbuilder

import "strings"

// node is a unit that renders to a fragment of the final pattern.
//
// The set of implementations is closed: literalNode, alternationNode,
// startsWithNode and endsWithNode. Nodes are never mutated once built.
type node interface {
	render() string
}

var (
	_ node = literalNode("")
	_ node = (*alternationNode)(nil)
	_ node = (*startsWithNode)(nil)
	_ node = (*endsWithNode)(nil)
)

// literalNode holds a fragment which is rendered as is.
type literalNode string

func (n literalNode) render() string { return string(n) }

// alternationNode appends a "(a|b|...)" group after its prefix.
type alternationNode struct {
	prefix       node
	alternatives []node
}

func newAlternationNode(prefix node, alternatives []node) *alternationNode {
	alts := make([]node, len(alternatives))
	copy(alts, alternatives)
	return &alternationNode{prefix: prefix, alternatives: alts}
}

func (n *alternationNode) render() string {
	var sb strings.Builder
	sb.WriteString(n.prefix.render())
	sb.WriteByte('(')
	for i, alt := range n.alternatives {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(alt.render())
	}
	sb.WriteByte(')')
	return sb.String()
}

// startsWithNode anchors the inner node at the start of input, with literal
// placed between the anchor and the inner fragment.
type startsWithNode struct {
	inner   node
	literal string
}

func (n *startsWithNode) render() string {
	return "^" + n.literal + n.inner.render()
}

// endsWithNode anchors the inner node at the end of input.
type endsWithNode struct {
	inner   node
	literal string
}

func (n *endsWithNode) render() string {
	return n.inner.render() + n.literal + "$"
}
