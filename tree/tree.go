package tree

import (
	"context"
	"errors"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// Tree represents a decision tree. It is composed of its root node,
// the labels of the training set it was built from (the last one
// being the class it predicts) and the attribute domain that was
// discovered on that training set.
//
// A Tree is not modified once built, so its methods can be called
// concurrently.
type Tree struct {
	Root   *Node
	Labels []string
	Domain *feature.Domain
}

// New takes a root node, the labels and the attribute domain used to
// build it and returns a Tree.
func New(root *Node, labels []string, domain *feature.Domain) *Tree {
	return &Tree{root, labels, domain}
}

// ClassLabel returns the label of the class the tree predicts
func (t *Tree) ClassLabel() string {
	return t.Labels[len(t.Labels)-1]
}

// Attributes returns the labels of the attributes a case may need
func (t *Tree) Attributes() []string {
	return t.Labels[:len(t.Labels)-1]
}

/*
Classify takes a case with a value for every attribute of the tree and
returns the class the tree predicts for it.

A *ClassificationError is returned if the case lacks a value for any
attribute, if any value is not in the attribute domain, or if the tree
has no branch for one of its values.
*/
func (t *Tree) Classify(ctx context.Context, c feature.Case) (string, error) {
	for _, a := range t.Attributes() {
		v, ok := c[a]
		if !ok {
			return "", &ClassificationError{Attribute: a, Err: ErrMissingValue}
		}
		if !t.Domain.Contains(a, v) {
			return "", &ClassificationError{Attribute: a, Value: v, Err: ErrUnknownValue}
		}
	}
	return t.Predict(ctx, c)
}

/*
Predict takes a sample and walks the tree from the root, asking the
sample only for the values of the attributes on its path, to return
the class on the reached leaf.

A *ClassificationError is returned when the sample has no value for
an attribute on the path, has a value outside the attribute domain or
there is no branch for it. Other errors from the sample are returned
as they are.
*/
func (t *Tree) Predict(ctx context.Context, s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrEmptyTree
	}
	n := t.Root
	for !n.IsLeaf() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := s.ValueFor(ctx, n.Name)
		if err != nil {
			if errors.Is(err, feature.ErrUndefinedValue) {
				return "", &ClassificationError{Attribute: n.Name, Err: ErrMissingValue}
			}
			return "", err
		}
		if t.Domain != nil && !t.Domain.Contains(n.Name, v) {
			return "", &ClassificationError{Attribute: n.Name, Value: v, Err: ErrUnknownValue}
		}
		child := n.Child(v)
		if child == nil {
			return "", &ClassificationError{Attribute: n.Name, Value: v, Err: ErrNoMatchingBranch}
		}
		n = child
	}
	return n.Name, nil
}

/*
Report holds the results of testing a tree against a set: the number of
rows in it, how many were classified correctly, how many could not be
classified and the same counts per expected class.
*/
type Report struct {
	Total   int
	Correct int
	Failed  int
	Classes []string
	ByClass map[string]*ClassReport
}

// ClassReport holds the testing results for the rows of one class
type ClassReport struct {
	Total   int
	Correct int
	Failed  int
}

// SuccessRate returns the ratio of correctly classified rows
func (r *Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0.0
	}
	return float64(r.Correct) / float64(r.Total)
}

/*
Test takes a context.Context and a Set with the same labels as the tree
and classifies every row in it, comparing the result with the row's class.
It returns a report of the results. Rows that cannot be classified because
of a *ClassificationError are counted as failed. Any other error aborts the
test and is returned.
*/
func (t *Tree) Test(ctx context.Context, s *dataset.Set) (*Report, error) {
	r := &Report{ByClass: make(map[string]*ClassReport)}
	attributes := s.Attributes()
	for _, row := range s.Rows {
		expected := row[len(row)-1]
		cr, ok := r.ByClass[expected]
		if !ok {
			cr = &ClassReport{}
			r.ByClass[expected] = cr
			r.Classes = append(r.Classes, expected)
		}
		r.Total++
		cr.Total++
		predicted, err := t.Classify(ctx, feature.NewCase(attributes, row))
		if err != nil {
			var ce *ClassificationError
			if !errors.As(err, &ce) {
				return nil, err
			}
			r.Failed++
			cr.Failed++
			continue
		}
		if predicted == expected {
			r.Correct++
			cr.Correct++
		}
	}
	return r, nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(ctx, t.Root, bottomup, f)
}

func traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, n)
		if err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		err = traverse(ctx, c, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		return f(ctx, n)
	}
	return nil
}

/*
Depth returns the number of levels of the tree: the number of nodes on
its longest path from the root to a leaf. Heights are computed bottom-up,
every node after its children.
*/
func (t *Tree) Depth() int {
	heights := make(map[*Node]int)
	t.Traverse(context.Background(), true, func(_ context.Context, n *Node) error {
		h := 0
		for _, c := range n.Children {
			if heights[c] > h {
				h = heights[c]
			}
		}
		heights[n] = h + 1
		return nil
	})
	return heights[t.Root]
}

// Leaves returns the number of leaves on the tree
func (t *Tree) Leaves() int {
	var leaves int
	t.Traverse(context.Background(), false, func(_ context.Context, n *Node) error {
		if n.IsLeaf() {
			leaves++
		}
		return nil
	})
	return leaves
}

/*
String renders the tree one node per line: the branch label leading to
the node in parentheses followed by the node name, indented with one tab
per level below the root.
*/
func (t *Tree) String() string {
	var b strings.Builder
	t.Traverse(context.Background(), false, func(_ context.Context, n *Node) error {
		if n.Level > 1 {
			b.WriteString(strings.Repeat("\t", n.Level-1))
		}
		if n != t.Root {
			b.WriteString("(")
			b.WriteString(n.BranchLabel)
			b.WriteString(") ")
		}
		b.WriteString(n.Name)
		b.WriteString("\n")
		return nil
	})
	return b.String()
}
