package feature

import (
	"context"
	"fmt"
)

// ErrUndefinedValue is returned by samples with no value for an attribute
const ErrUndefinedValue = SampleError("no value defined for attribute")

// SampleError represents an error obtaining a value from a sample
type SampleError string

func (se SampleError) Error() string {
	return string(se)
}

/*
Sample is an item to classify.

Its ValueFor method returns the value of the sample for the attribute
with the given name, or an error if it cannot be obtained.
*/
type Sample interface {
	ValueFor(ctx context.Context, attribute string) (string, error)
}

/*
Case is a Sample with every value known beforehand: a map of
attribute names to values.
*/
type Case map[string]string

/*
ValueFor returns the value of the case for the given attribute or
ErrUndefinedValue if the case has none.
*/
func (c Case) ValueFor(_ context.Context, attribute string) (string, error) {
	v, ok := c[attribute]
	if !ok {
		return "", ErrUndefinedValue
	}
	return v, nil
}

func (c Case) String() string {
	return fmt.Sprintf("[%v]", map[string]string(c))
}

/*
NewCase takes a slice of labels and a row with a value for each
(additional trailing values, like a class, are ignored) and returns
the case mapping every label to its value.
*/
func NewCase(labels []string, row []string) Case {
	c := make(Case, len(labels))
	for i, l := range labels {
		if i < len(row) {
			c[l] = row[i]
		}
	}
	return c
}
