package feature

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/id3/dataset"
)

/*
Domain maps every attribute of a training set to the values it can
take. It is computed once from the whole training set before any
partitioning happens and is not modified afterwards, so it can be
shared by every level of a tree under construction and by any number
of concurrent readers.
*/
type Domain struct {
	attributes []string
	values     map[string]*linkedhashset.Set
}

/*
NewDomain takes the labels of a training set and its rows and returns
the domain of every attribute label but the last one (the class). Values
are kept in the order they are first encountered on the rows.
*/
func NewDomain(labels []string, rows []dataset.Row) *Domain {
	attributes := labels[:len(labels)-1]
	d := &Domain{
		attributes: append([]string{}, attributes...),
		values:     make(map[string]*linkedhashset.Set, len(attributes)),
	}
	for i, a := range attributes {
		s := linkedhashset.New()
		for _, r := range rows {
			s.Add(r[i])
		}
		d.values[a] = s
	}
	return d
}

/*
Extend takes a slice of features and returns a new domain that
includes, after the values already on the domain, any available value
of the features that was not yet known. Features for unknown attributes
are ignored.
*/
func (d *Domain) Extend(features []*Feature) *Domain {
	nd := &Domain{
		attributes: d.attributes,
		values:     make(map[string]*linkedhashset.Set, len(d.values)),
	}
	for a, s := range d.values {
		nd.values[a] = linkedhashset.New(s.Values()...)
	}
	for _, f := range features {
		s, ok := nd.values[f.Name()]
		if !ok {
			continue
		}
		for _, v := range f.AvailableValues() {
			s.Add(v)
		}
	}
	return nd
}

// Attributes returns the attribute labels covered by the domain
func (d *Domain) Attributes() []string {
	return d.attributes
}

/*
Values returns the values for the given attribute in the order
they were first encountered, or nil if the attribute is unknown.
*/
func (d *Domain) Values(attribute string) []string {
	s, ok := d.values[attribute]
	if !ok {
		return nil
	}
	result := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		result = append(result, v.(string))
	}
	return result
}

// Contains returns whether value is part of the domain of attribute
func (d *Domain) Contains(attribute, value string) bool {
	s, ok := d.values[attribute]
	if !ok {
		return false
	}
	return s.Contains(value)
}

// Feature returns the attribute as a Feature with the domain values
func (d *Domain) Feature(attribute string) *Feature {
	return New(attribute, d.Values(attribute))
}
