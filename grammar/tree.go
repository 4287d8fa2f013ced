package grammar

// Node is a parse tree node: either a terminal leaf carrying one character,
// or a non-terminal internal node carrying its symbol name and an ordered
// child list.
type Node struct {
	Terminal bool
	Char     byte

	Name     string
	Children []*Node
}

// IsTerminal reports whether n is a terminal leaf.
func (n *Node) IsTerminal() bool { return n.Terminal }

// Fringe returns the left-to-right sequence of terminal characters under n,
// i.e. the original input n was parsed from. Used by round-trip tests.
func (n *Node) Fringe() []byte {
	if n.Terminal {
		return []byte{n.Char}
	}
	var out []byte
	for _, c := range n.Children {
		out = append(out, c.Fringe()...)
	}
	return out
}

// collapse contracts single-child non-terminal chains: a non-terminal with
// exactly one child is replaced by that child, recursively. The result has
// the invariant that every remaining non-terminal has at least two children
// (or is a childless terminal leaf).
func collapse(n *Node) *Node {
	if n.Terminal {
		return n
	}
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = collapse(c)
	}
	if len(children) == 1 {
		return children[0]
	}
	return &Node{Name: n.Name, Children: children}
}
