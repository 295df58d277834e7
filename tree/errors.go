package tree

import "fmt"

// ClassificationErrorKind represents the reason a case could not be classified
type ClassificationErrorKind string

const (
	// ErrMissingValue is the reason given when a case has no value for
	// an attribute the tree needs.
	ErrMissingValue = ClassificationErrorKind("no value for attribute")
	// ErrUnknownValue is the reason given when a case has a value that
	// was not in the attribute domain when the tree was built.
	ErrUnknownValue = ClassificationErrorKind("value not seen in training data")
	// ErrNoMatchingBranch is the reason given when a node has no branch
	// for a value of the attribute domain. It means the tree and its
	// domain are inconsistent.
	ErrNoMatchingBranch = ClassificationErrorKind("no branch for value")
	// ErrEmptyTree is returned when classifying with a tree without root
	ErrEmptyTree = ClassificationErrorKind("tree has no root")
)

func (k ClassificationErrorKind) Error() string {
	return string(k)
}

/*
ClassificationError is returned when a case cannot be classified. It
names the offending attribute and value.
*/
type ClassificationError struct {
	Attribute string
	Value     string
	Err       error
}

func (ce *ClassificationError) Error() string {
	if ce.Err == ErrMissingValue {
		return fmt.Sprintf("classifying case: attribute %s: %v", ce.Attribute, ce.Err)
	}
	return fmt.Sprintf("classifying case: attribute %s, value %q: %v", ce.Attribute, ce.Value, ce.Err)
}

func (ce *ClassificationError) Unwrap() error {
	return ce.Err
}
