package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherMetadata = `
class: Play
order: [Temp, Weather]
features:
  Weather: [Sunny, Rain, Overcast]
  Temp: [Hot, Mild, Cool]
  Play: ["Yes", "No"]
`

func TestReadMetadata(t *testing.T) {
	m, err := ReadMetadata([]byte(weatherMetadata))
	require.NoError(t, err)
	require.Len(t, m.Features, 3)
	assert.Equal(t, "Weather", m.Features[0].Name())
	assert.Equal(t, []string{"Sunny", "Rain", "Overcast"}, m.Features[0].AvailableValues())
	assert.Equal(t, []string{"Yes", "No"}, m.Feature("Play").AvailableValues())
	assert.Equal(t, "Play", m.Class)
	assert.Equal(t, []string{"Temp", "Weather"}, m.Order)
	assert.Nil(t, m.Feature("Wind"))
}

func TestReadMetadataErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no features", "class: Play\n"},
		{"continuous feature", "features:\n  Temp: continuous\n"},
		{"undeclared class", "class: Play\nfeatures:\n  Temp: [Hot]\n"},
		{"undeclared ordered feature", "order: [Wind]\nfeatures:\n  Temp: [Hot]\n"},
		{"not yaml", "features: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMetadata([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestReadMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(weatherMetadata), 0o600))
	m, err := ReadMetadataFromFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Features, 3)

	_, err = ReadMetadataFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	m, err := ReadMetadata([]byte(weatherMetadata))
	require.NoError(t, err)

	s := dataset.New([]string{"Weather", "Temp", "Play"}, []dataset.Row{{"Sunny", "Hot", "No"}, {"Rain", "Cool", "Yes"}})
	assert.NoError(t, m.Validate(s))

	s.Rows = append(s.Rows, dataset.Row{"Snow", "Cool", "No"})
	assert.EqualError(t, m.Validate(s), "row 3: feature Weather got unknown value Snow")

	s = dataset.New([]string{"Wind", "Play"}, []dataset.Row{{"Strong", "No"}})
	assert.EqualError(t, m.Validate(s), "reference to undeclared feature Wind")
}

func TestArrange(t *testing.T) {
	m, err := ReadMetadata([]byte(weatherMetadata))
	require.NoError(t, err)
	s := dataset.New([]string{"Play", "Weather", "Temp"}, []dataset.Row{{"No", "Sunny", "Hot"}})
	arranged, err := m.Arrange(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"Temp", "Weather", "Play"}, arranged.Labels)
	assert.Equal(t, []dataset.Row{{"Hot", "Sunny", "No"}}, arranged.Rows)
}
