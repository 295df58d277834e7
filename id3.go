/*
Package id3 builds decision trees from categorical training data with
the ID3 algorithm: every node splits its rows on the attribute with the
highest information gain until the rows reaching a node share their class.
*/
package id3

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
	"go.uber.org/zap"
)

// Option configures a Build
type Option func(*builder)

// WithLogger makes Build log the splits it chooses on the given logger
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		b.logger = l
	}
}

/*
WithFeatures makes Build include in the attribute domain the available
values of the given features, so that values declared but never seen
on the training set still get a branch on every node splitting on
their attribute.
*/
func WithFeatures(features []*feature.Feature) Option {
	return func(b *builder) {
		b.features = features
	}
}

type builder struct {
	domain   *feature.Domain
	logger   *zap.Logger
	features []*feature.Feature
}

/*
Build takes a context and a training set and returns the decision tree
that classifies its rows according to their last column.

The set is validated before anything is built: an error wrapping
dataset.ErrEmptySet, dataset.ErrNoAttributes, dataset.ErrDuplicateLabel
or dataset.ErrMalformedRow is returned if it cannot be used. The context
error is returned if it is done before the tree is complete.
*/
func Build(ctx context.Context, s *dataset.Set, opts ...Option) (*tree.Tree, error) {
	err := s.Validate()
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	b := &builder{logger: zap.NewNop()}
	for _, o := range opts {
		o(b)
	}
	b.domain = feature.NewDomain(s.Labels, s.Rows)
	if len(b.features) > 0 {
		b.domain = b.domain.Extend(b.features)
	}
	root, err := b.build(ctx, s.Labels, s.Rows, 1)
	if err != nil {
		return nil, err
	}
	return tree.New(root, s.Labels, b.domain), nil
}

/*
build returns the root of the subtree for the given rows at the given
level. The last label names the class column, the others are the
attributes still available to split on.
*/
func (b *builder) build(ctx context.Context, labels []string, rows []dataset.Row, level int) (*tree.Node, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}
	sEntropy := dataset.Entropy(rows)
	if sEntropy == 0.0 {
		n := b.newNode(rows, level)
		n.Name = rows[0][len(rows[0])-1]
		return n, nil
	}
	majority := dataset.MajorityClass(rows)
	if len(labels) < 2 {
		// conflicting rows and no attribute left to tell them apart
		n := b.newNode(rows, level)
		n.Name = majority
		n.MajorityClass = majority
		return n, nil
	}
	p := bestPartition(labels, rows, sEntropy)
	b.logger.Debug("split chosen",
		zap.Int("level", level),
		zap.String("attribute", p.Attribute),
		zap.Float64("informationGain", p.InformationGain),
		zap.Int("rows", len(rows)))

	n := b.newNode(rows, level)
	n.Name = p.Attribute
	n.MajorityClass = majority
	var unresolved []int
	for _, v := range p.Values {
		child := tree.NewNode(p.Rows[v], level+1)
		child.BranchLabel = v
		if !child.ResolveIfPure() {
			unresolved = append(unresolved, len(n.Children))
		}
		n.AddChild(child)
	}
	for _, v := range b.domain.Values(p.Attribute) {
		if _, ok := p.Rows[v]; ok {
			continue
		}
		n.AddChild(&tree.Node{BranchLabel: v, Name: majority, Level: level + 1, Fallback: true})
	}

	stLabels := make([]string, 0, len(labels)-1)
	stLabels = append(stLabels, labels[:p.Column]...)
	stLabels = append(stLabels, labels[p.Column+1:]...)
	for _, i := range unresolved {
		stRows := dataset.WithoutColumn(n.Children[i].CaseSet, p.Column)
		st, err := b.build(ctx, stLabels, stRows, level+1)
		if err != nil {
			return nil, err
		}
		n.ReplaceChild(i, st)
	}
	return n, nil
}

// newNode returns a node for the rows, leaving the root without case set
func (b *builder) newNode(rows []dataset.Row, level int) *tree.Node {
	if level == 1 {
		return tree.NewNode(nil, level)
	}
	return tree.NewNode(rows, level)
}
