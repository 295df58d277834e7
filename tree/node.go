package tree

import (
	"github.com/pbanos/id3/dataset"
)

/*
Node is a node of the tree
*/
type Node struct {
	// The training rows that reached this node. It is nil for the root
	// of a tree and for fallback leaves, which have no rows of their own.
	CaseSet []dataset.Row
	// The nodes directly under this node, one per value of the attribute
	// named by this node. Empty for leaves.
	Children []*Node
	// The value of the parent's attribute on the branch leading to this
	// node. Empty for the root.
	BranchLabel string
	// The attribute to test for internal nodes, the predicted class for
	// leaves. Empty while undetermined.
	Name string
	// Depth of the node, 1 being the root.
	Level int
	// The most frequent class on the case set, set by ResolveIfPure when
	// the node cannot be named after a single class.
	MajorityClass string
	// Whether the node is a leaf synthesized for a value of the parent's
	// attribute that no training row had at that point of the tree.
	Fallback bool
}

// NewNode returns a node at the given level for the given rows
func NewNode(caseSet []dataset.Row, level int) *Node {
	return &Node{CaseSet: caseSet, Level: level}
}

// IsLeaf returns whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// AddChild appends a child to the node
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

/*
ReplaceChild takes an index and a node and puts the node in the place
of the child at that index, keeping the branch label of the replaced
child.
*/
func (n *Node) ReplaceChild(i int, child *Node) {
	child.BranchLabel = n.Children[i].BranchLabel
	n.Children[i] = child
}

/*
ResolveIfPure names the node after the class of its rows when they all
share it. Otherwise, if the node has rows, it records their majority class.
It returns whether the node was named.
*/
func (n *Node) ResolveIfPure() bool {
	if len(n.CaseSet) == 0 {
		return false
	}
	if dataset.Entropy(n.CaseSet) == 0.0 {
		n.Name = n.CaseSet[0][len(n.CaseSet[0])-1]
		return true
	}
	n.MajorityClass = dataset.MajorityClass(n.CaseSet)
	return false
}

// Child returns the child on the branch with the given label or nil
func (n *Node) Child(branchLabel string) *Node {
	for _, c := range n.Children {
		if c.BranchLabel == branchLabel {
			return c
		}
	}
	return nil
}
