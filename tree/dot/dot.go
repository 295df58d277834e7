/*
Package dot renders trees in the DOT language of Graphviz for
diagnostic display.
*/
package dot

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/id3/tree"
)

const graphName = "G"

/*
Graph takes a tree and returns a directed graph with a node for each
node of the tree and an edge labelled with the branch value for each
parent to child link. Internal nodes are boxes, leaves are ellipses and
fallback leaves are dashed.
*/
func Graph(t *tree.Tree) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	ids := make(map[*tree.Node]string)
	err := t.Traverse(context.Background(), false, func(_ context.Context, n *tree.Node) error {
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		attrs := map[string]string{"label": strconv.Quote(n.Name)}
		if n.IsLeaf() {
			attrs["shape"] = "ellipse"
		} else {
			attrs["shape"] = "box"
		}
		if n.Fallback {
			attrs["style"] = "dashed"
		}
		if err := g.AddNode(graphName, id, attrs); err != nil {
			return fmt.Errorf("adding node %s: %v", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = t.Traverse(context.Background(), false, func(_ context.Context, n *tree.Node) error {
		for _, c := range n.Children {
			attrs := map[string]string{"label": strconv.Quote(c.BranchLabel)}
			if err := g.AddEdge(ids[n], ids[c], true, attrs); err != nil {
				return fmt.Errorf("adding edge %s -> %s: %v", ids[n], ids[c], err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Write renders the tree as a DOT digraph onto the given writer
func Write(t *tree.Tree, w io.Writer) error {
	g, err := Graph(t)
	if err != nil {
		return fmt.Errorf("rendering tree as DOT: %v", err)
	}
	_, err = io.WriteString(w, g.String())
	return err
}
