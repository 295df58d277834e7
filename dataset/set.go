package dataset

import (
	"fmt"
	"math"
)

// SetError represents an error on the shape of a training set
type SetError string

const (
	// ErrEmptySet is returned when a set has no rows to learn from.
	ErrEmptySet = SetError("training set has no rows")
	// ErrNoAttributes is returned when a set has no column other than the
	// class column.
	ErrNoAttributes = SetError("training set needs at least one attribute and a class column")
	// ErrMalformedRow is returned when a row has a different number of
	// values than the set has labels.
	ErrMalformedRow = SetError("malformed row")
	// ErrDuplicateLabel is returned when two columns share a label.
	ErrDuplicateLabel = SetError("duplicate label")
)

func (se SetError) Error() string {
	return string(se)
}

/*
Row is a training case: one value per attribute label, the last
one being the value of the class column.
*/
type Row []string

/*
Set represents a training set: the labels of its columns, the last
of which is the class, and the rows with the values for each.
*/
type Set struct {
	Labels []string
	Rows   []Row
}

/*
New takes a slice of labels and a slice of rows and returns a Set
with them.
*/
func New(labels []string, rows []Row) *Set {
	return &Set{Labels: labels, Rows: rows}
}

/*
Validate returns an error if the set cannot be used to build a tree:
it has no rows, no attribute besides the class, duplicated labels or
rows whose length disagrees with the number of labels.
*/
func (s *Set) Validate() error {
	if len(s.Labels) < 2 {
		return ErrNoAttributes
	}
	seen := make(map[string]bool, len(s.Labels))
	for _, l := range s.Labels {
		if seen[l] {
			return fmt.Errorf("%w %q", ErrDuplicateLabel, l)
		}
		seen[l] = true
	}
	if len(s.Rows) == 0 {
		return ErrEmptySet
	}
	for i, r := range s.Rows {
		if len(r) != len(s.Labels) {
			return fmt.Errorf("%w %d: has %d values, expected %d", ErrMalformedRow, i+1, len(r), len(s.Labels))
		}
	}
	return nil
}

// ClassLabel returns the label of the class column
func (s *Set) ClassLabel() string {
	return s.Labels[len(s.Labels)-1]
}

// Attributes returns the labels of every column but the class
func (s *Set) Attributes() []string {
	return s.Labels[:len(s.Labels)-1]
}

/*
Column returns the index of the column with the given label or -1 if
the set has no such column.
*/
func (s *Set) Column(label string) int {
	for i, l := range s.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

/*
MoveToEnd returns a new set with the column for the given label moved
to the last position, thus making it the class column. Rows are copied.
*/
func (s *Set) MoveToEnd(label string) (*Set, error) {
	i := s.Column(label)
	if i < 0 {
		return nil, fmt.Errorf("class column %q is not defined", label)
	}
	labels := append(append(append([]string{}, s.Labels[:i]...), s.Labels[i+1:]...), label)
	rows := make([]Row, 0, len(s.Rows))
	for n, r := range s.Rows {
		if len(r) != len(s.Labels) {
			return nil, fmt.Errorf("%w %d: has %d values, expected %d", ErrMalformedRow, n+1, len(r), len(s.Labels))
		}
		nr := append(append(append(make(Row, 0, len(r)), r[:i]...), r[i+1:]...), r[i])
		rows = append(rows, nr)
	}
	return &Set{labels, rows}, nil
}

/*
CountByValue takes a slice of rows and a column index and returns the
number of occurrences of each value on that column. A negative column
counts from the end, so -1 refers to the class column.
*/
func CountByValue(rows []Row, column int) map[string]int {
	result := make(map[string]int)
	for _, r := range rows {
		result[r[index(r, column)]]++
	}
	return result
}

/*
Values takes a slice of rows and a column index and returns the distinct
values on that column in the order they are first encountered.
*/
func Values(rows []Row, column int) []string {
	var result []string
	encountered := make(map[string]bool)
	for _, r := range rows {
		v := r[index(r, column)]
		if !encountered[v] {
			encountered[v] = true
			result = append(result, v)
		}
	}
	return result
}

/*
Entropy returns the Shannon entropy in bits of the class column of the
given rows. It is exactly 0.0 when all rows share their class, and also
for an empty slice.
*/
func Entropy(rows []Row) float64 {
	counts := CountByValue(rows, -1)
	if len(counts) < 2 {
		return 0.0
	}
	var result float64
	total := float64(len(rows))
	for _, c := range Values(rows, -1) {
		p := float64(counts[c]) / total
		result -= p * math.Log2(p)
	}
	return result
}

/*
MajorityClass returns the most frequent class among the given rows.
Ties are resolved in favour of the class encountered first. An empty
slice has no majority class and yields "".
*/
func MajorityClass(rows []Row) string {
	counts := CountByValue(rows, -1)
	var result string
	var max int
	for _, c := range Values(rows, -1) {
		if counts[c] > max {
			result = c
			max = counts[c]
		}
	}
	return result
}

/*
Partition takes a slice of rows and a column index and groups the rows
by their value on that column. It returns the values in the order they
are first encountered along with the rows for each of them.
*/
func Partition(rows []Row, column int) ([]string, map[string][]Row) {
	values := Values(rows, column)
	parts := make(map[string][]Row, len(values))
	for _, r := range rows {
		v := r[index(r, column)]
		parts[v] = append(parts[v], r)
	}
	return values, parts
}

/*
WithoutColumn returns a copy of the given rows with the column at the
given index removed from every one of them. The original rows are left
untouched.
*/
func WithoutColumn(rows []Row, column int) []Row {
	result := make([]Row, 0, len(rows))
	for _, r := range rows {
		nr := make(Row, 0, len(r)-1)
		nr = append(nr, r[:column]...)
		nr = append(nr, r[column+1:]...)
		result = append(result, nr)
	}
	return result
}

func index(r Row, column int) int {
	if column < 0 {
		return len(r) + column
	}
	return column
}
