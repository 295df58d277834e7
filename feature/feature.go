package feature

import "fmt"

/*
Feature represents a categorical attribute that can be observed: it
has a name and can only take a value among a finite set.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings
and returns a feature with the given name and available values.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, availableValues}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Valid receives a value and returns a boolean and an error. When the
value is included in the available values of the feature, the method
returns true and nil. Otherwise it returns false and an error describing
the reason.
*/
func (f *Feature) Valid(value string) (bool, error) {
	for _, av := range f.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("feature %s got unknown value %s", f.Name(), value)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

func (f *Feature) String() string {
	return f.name
}
