package id3

import (
	"github.com/pbanos/id3/dataset"
)

// gainTolerance is the margin by which an information gain must exceed
// another one to be considered greater. Gains are sums of floats taken in
// the order values are found, so equal gains can differ in their last bits.
const gainTolerance = 1e-12

/*
Partition represents a partition of a set of rows according to an
attribute: the values of the attribute in the order they were found,
the rows for each value and the information gain it provides.
*/
type Partition struct {
	Attribute       string
	Column          int
	Values          []string
	Rows            map[string][]dataset.Row
	InformationGain float64
}

/*
NewPartition takes a set of rows, the label and column index of an
attribute and the entropy of the rows and returns the partition of the
rows by the values of that attribute. Its information gain is the entropy
of the rows minus the entropy of each part weighted by its size.
*/
func NewPartition(rows []dataset.Row, attribute string, column int, entropy float64) *Partition {
	values, parts := dataset.Partition(rows, column)
	total := float64(len(rows))
	informationGain := entropy
	for _, v := range values {
		informationGain -= dataset.Entropy(parts[v]) * float64(len(parts[v])) / total
	}
	return &Partition{attribute, column, values, parts, informationGain}
}

/*
bestPartition returns the partition of the rows with the highest
information gain among those for every attribute label but the last.
Ties, up to gainTolerance, go to the attribute that comes first in
label order.
*/
func bestPartition(labels []string, rows []dataset.Row, entropy float64) *Partition {
	var selected *Partition
	for i, a := range labels[:len(labels)-1] {
		p := NewPartition(rows, a, i, entropy)
		if selected == nil || p.InformationGain > selected.InformationGain+gainTolerance {
			selected = p
		}
	}
	return selected
}
