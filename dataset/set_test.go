package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherRows() []Row {
	return []Row{
		{"Sunny", "Hot", "No"},
		{"Sunny", "Mild", "Yes"},
		{"Rain", "Mild", "Yes"},
		{"Rain", "Hot", "No"},
	}
}

func TestCountByValue(t *testing.T) {
	rows := weatherRows()
	assert.Equal(t, map[string]int{"Sunny": 2, "Rain": 2}, CountByValue(rows, 0))
	assert.Equal(t, map[string]int{"No": 2, "Yes": 2}, CountByValue(rows, -1))
	assert.Equal(t, CountByValue(rows, 2), CountByValue(rows, -1))
	assert.Equal(t, weatherRows(), rows)
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Row
		expected float64
	}{
		{"balanced binary class", weatherRows(), 1.0},
		{"single class", []Row{{"a", "x"}, {"b", "x"}}, 0.0},
		{"single row", []Row{{"a", "x"}}, 0.0},
		{"empty", nil, 0.0},
		{"three to one", []Row{{"a", "x"}, {"b", "x"}, {"c", "x"}, {"d", "y"}}, 0.8112781244591328},
		{"four classes", []Row{{"a", "w"}, {"b", "x"}, {"c", "y"}, {"d", "z"}}, 2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Entropy(tt.rows), 1e-12)
		})
	}
}

func TestEntropyIsExactlyZeroForPureSets(t *testing.T) {
	assert.True(t, Entropy([]Row{{"a", "x"}, {"b", "x"}, {"c", "x"}}) == 0.0)
}

func TestMajorityClass(t *testing.T) {
	assert.Equal(t, "Yes", MajorityClass([]Row{{"a", "No"}, {"b", "Yes"}, {"c", "Yes"}}))
	assert.Equal(t, "No", MajorityClass(weatherRows()), "ties go to the first class encountered")
	assert.Equal(t, "", MajorityClass(nil))
}

func TestPartition(t *testing.T) {
	values, parts := Partition(weatherRows(), 1)
	assert.Equal(t, []string{"Hot", "Mild"}, values)
	assert.Equal(t, []Row{{"Sunny", "Hot", "No"}, {"Rain", "Hot", "No"}}, parts["Hot"])
	assert.Equal(t, []Row{{"Sunny", "Mild", "Yes"}, {"Rain", "Mild", "Yes"}}, parts["Mild"])
}

func TestWithoutColumn(t *testing.T) {
	rows := weatherRows()
	trimmed := WithoutColumn(rows, 1)
	assert.Equal(t, []Row{{"Sunny", "No"}, {"Sunny", "Yes"}, {"Rain", "Yes"}, {"Rain", "No"}}, trimmed)
	trimmed[0][0] = "Snow"
	assert.Equal(t, weatherRows(), rows, "original rows must not be modified")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
		err  error
	}{
		{"valid", New([]string{"Weather", "Temp", "Play"}, weatherRows()), nil},
		{"empty", New([]string{"Weather", "Play"}, nil), ErrEmptySet},
		{"class only", New([]string{"Play"}, []Row{{"Yes"}}), ErrNoAttributes},
		{"duplicate label", New([]string{"Play", "Play"}, []Row{{"a", "b"}}), ErrDuplicateLabel},
		{"short row", New([]string{"Weather", "Temp", "Play"}, []Row{{"Sunny", "Hot", "No"}, {"Rain", "No"}}), ErrMalformedRow},
		{"long row", New([]string{"Weather", "Play"}, []Row{{"Sunny", "Hot", "No"}}), ErrMalformedRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateNamesMalformedRow(t *testing.T) {
	s := New([]string{"Weather", "Temp", "Play"}, []Row{{"Sunny", "Hot", "No"}, {"Rain", "No"}})
	assert.EqualError(t, s.Validate(), "malformed row 2: has 2 values, expected 3")
}

func TestMoveToEnd(t *testing.T) {
	s := New([]string{"Play", "Weather", "Temp"}, []Row{{"No", "Sunny", "Hot"}, {"Yes", "Rain", "Mild"}})
	moved, err := s.MoveToEnd("Play")
	require.NoError(t, err)
	assert.Equal(t, []string{"Weather", "Temp", "Play"}, moved.Labels)
	assert.Equal(t, []Row{{"Sunny", "Hot", "No"}, {"Rain", "Mild", "Yes"}}, moved.Rows)
	assert.Equal(t, "Play", moved.ClassLabel())
	assert.Equal(t, []string{"Weather", "Temp"}, moved.Attributes())
	assert.Equal(t, []string{"Play", "Weather", "Temp"}, s.Labels)

	_, err = s.MoveToEnd("Wind")
	assert.Error(t, err)
}
