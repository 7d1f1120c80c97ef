package accounts

import (
	"errors"
	"iter"
	"maps"
	"slices"
)

// RootName is the name of the synthetic node every category tree is rooted at.
const RootName = "root"

// CategoryNode is one node of a category tree. The tree mirrors all observed
// category paths; a transaction is attached only to the node reached by fully
// walking its category path from the root.
//
// A node owns its children; Parent is a lookup-only back-reference used for
// upward traversal and never implies ownership.
type CategoryNode struct {
	Name         string
	Parent       *CategoryNode
	children     map[string]*CategoryNode
	Transactions []AccountTx
}

// NewCategoryTree returns an empty tree: a lone synthetic root node.
func NewCategoryTree() *CategoryNode {
	return &CategoryNode{Name: RootName, children: make(map[string]*CategoryNode)}
}

// Categorize builds a category tree from the given lines. Each line's
// (already parsed) category path is walked from the root, creating missing
// child nodes first-seen-wins, and the line is attached at the terminal node.
// A line with a missing category yields a line-scoped structural error.
func Categorize(lines []AccountTx) (*CategoryNode, error) {
	root := NewCategoryTree()
	var errs []error
	for _, tx := range lines {
		if tx.Category.IsZero() {
			errs = append(errs, structuralf(tx.Acct, tx.Lineno, "category is missing or empty"))
			continue
		}
		node := root
		for _, segment := range tx.Category {
			node = node.child(segment)
		}
		node.Transactions = append(node.Transactions, tx)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return root, nil
}

// child returns the named child, creating it if absent. An existing node is
// never overwritten.
func (n *CategoryNode) child(name string) *CategoryNode {
	if n.children == nil {
		n.children = make(map[string]*CategoryNode)
	}
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &CategoryNode{Name: name, Parent: n}
	n.children[name] = c
	return c
}

// Get walks the delimited path from this node and returns the terminal node,
// or nil if any segment is absent.
func (n *CategoryNode) Get(name string) *CategoryNode {
	path, err := ParseCategory(name)
	if err != nil {
		return nil
	}
	node := n
	for _, segment := range path {
		node = node.children[segment]
		if node == nil {
			return nil
		}
	}
	return node
}

// Contains reports whether this node or any descendant has the given name.
// This is a downward search.
func (n *CategoryNode) Contains(name string) bool {
	if n.Name == name {
		return true
	}
	for _, c := range n.children {
		if c.Contains(name) {
			return true
		}
	}
	return false
}

// Under reports whether any ancestor, walking strictly upward, has the given
// name.
func (n *CategoryNode) Under(name string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Name == name {
			return true
		}
	}
	return false
}

// FullName recomputes the full delimited name of this node: the join of names
// along the path from root, excluding the synthetic root itself.
func (n *CategoryNode) FullName() string {
	if n.Parent == nil {
		return ""
	}
	parent := n.Parent.FullName()
	if parent == "" {
		return n.Name
	}
	return parent + CategorySeparator + n.Name
}

// NamesOptions configures CollectNames.
type NamesOptions struct {
	// ExcludeRoot leaves the synthetic root node out of the index.
	ExcludeRoot bool
}

// CollectNames populates index with every full delimited category name
// present in the tree, mutating the caller-supplied index.
func (n *CategoryNode) CollectNames(index map[string]struct{}, opts NamesOptions) {
	if n.Parent != nil {
		index[n.FullName()] = struct{}{}
	} else if !opts.ExcludeRoot {
		index[n.Name] = struct{}{}
	}
	for _, c := range n.children {
		c.CollectNames(index, opts)
	}
}

// Children iterates over this node's children in sorted-by-name order, the
// order report exporters walk the tree in.
func (n *CategoryNode) Children() iter.Seq[*CategoryNode] {
	return func(yield func(*CategoryNode) bool) {
		names := slices.Collect(maps.Keys(n.children))
		slices.Sort(names)
		for _, name := range names {
			if !yield(n.children[name]) {
				return
			}
		}
	}
}

// NumChildren returns the number of direct children.
func (n *CategoryNode) NumChildren() int { return len(n.children) }
