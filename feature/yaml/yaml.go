/*
Package yaml provides methods to parse feature specifications, also
known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the columns of a training set: the values each
attribute may take, which column is the class and, optionally, the
order of the attributes.
*/
type Metadata struct {
	Features []*feature.Feature
	Class    string
	Order    []string
}

/*
ReadMetadata takes a slice of bytes with a feature specification in YAML and
returns the metadata parsed from it or an error.
The YAML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name and
a list of valid values. Optional class and order properties name the class
feature and the order in which features are listed.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	doc := struct {
		Features yaml.MapSlice `yaml:"features"`
		Class    string        `yaml:"class"`
		Order    []string      `yaml:"order"`
	}{}
	err := yaml.Unmarshal(md, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if doc.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	m := &Metadata{Class: doc.Class, Order: doc.Order}
	for _, item := range doc.Features {
		name := fmt.Sprintf("%v", item.Key)
		values, ok := item.Value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s: expected a list of values", item.Value, name)
		}
		stringVs := make([]string, 0, len(values))
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		m.Features = append(m.Features, feature.New(name, stringVs))
	}
	if m.Class != "" && m.Feature(m.Class) == nil {
		return nil, fmt.Errorf("class feature %s is not declared", m.Class)
	}
	for _, n := range m.Order {
		if m.Feature(n) == nil {
			return nil, fmt.Errorf("ordered feature %s is not declared", n)
		}
	}
	return m, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return m, err
}

// Feature returns the declared feature with the given name or nil
func (m *Metadata) Feature(name string) *feature.Feature {
	for _, f := range m.Features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

/*
Validate takes a training set and returns an error if any of its
labels is not declared or if any row has a value not available for
the feature of its column.
*/
func (m *Metadata) Validate(s *dataset.Set) error {
	features := make([]*feature.Feature, len(s.Labels))
	for i, l := range s.Labels {
		f := m.Feature(l)
		if f == nil {
			return fmt.Errorf("reference to undeclared feature %s", l)
		}
		features[i] = f
	}
	for n, r := range s.Rows {
		for i, v := range r {
			if i >= len(features) {
				break
			}
			if ok, err := features[i].Valid(v); !ok {
				return fmt.Errorf("row %d: %v", n+1, err)
			}
		}
	}
	return nil
}

/*
Arrange takes a training set and returns it with the columns sorted
as the metadata says: attributes in the declared order (if any) and the
declared class (if any) as last column.
*/
func (m *Metadata) Arrange(s *dataset.Set) (*dataset.Set, error) {
	var err error
	for _, n := range m.Order {
		if n == m.Class {
			continue
		}
		s, err = s.MoveToEnd(n)
		if err != nil {
			return nil, err
		}
	}
	if m.Class != "" {
		s, err = s.MoveToEnd(m.Class)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}
