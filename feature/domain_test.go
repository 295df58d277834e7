package feature

import (
	"context"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomain(t *testing.T) {
	labels := []string{"Weather", "Temp", "Play"}
	rows := []dataset.Row{
		{"Sunny", "Hot", "No"},
		{"Rain", "Mild", "Yes"},
		{"Sunny", "Cool", "Yes"},
		{"Overcast", "Hot", "Yes"},
	}
	d := NewDomain(labels, rows)
	assert.Equal(t, []string{"Weather", "Temp"}, d.Attributes())
	assert.Equal(t, []string{"Sunny", "Rain", "Overcast"}, d.Values("Weather"))
	assert.Equal(t, []string{"Hot", "Mild", "Cool"}, d.Values("Temp"))
	assert.Nil(t, d.Values("Play"), "the class column is not part of the domain")
	assert.True(t, d.Contains("Weather", "Overcast"))
	assert.False(t, d.Contains("Weather", "Snow"))
	assert.False(t, d.Contains("Wind", "Strong"))

	f := d.Feature("Temp")
	assert.Equal(t, "Temp", f.Name())
	ok, err := f.Valid("Cool")
	assert.True(t, ok)
	assert.NoError(t, err)
	ok, err = f.Valid("Freezing")
	assert.False(t, ok)
	assert.EqualError(t, err, "feature Temp got unknown value Freezing")
}

func TestDomainExtend(t *testing.T) {
	d := NewDomain([]string{"Weather", "Play"}, []dataset.Row{{"Sunny", "No"}, {"Rain", "Yes"}})
	extended := d.Extend([]*Feature{
		New("Weather", []string{"Rain", "Snow", "Sunny"}),
		New("Wind", []string{"Strong"}),
	})
	assert.Equal(t, []string{"Sunny", "Rain", "Snow"}, extended.Values("Weather"))
	assert.Nil(t, extended.Values("Wind"))
	assert.Equal(t, []string{"Sunny", "Rain"}, d.Values("Weather"), "extending must not modify the domain")
}

func TestCase(t *testing.T) {
	ctx := context.Background()
	c := NewCase([]string{"Weather", "Temp"}, []string{"Sunny", "Hot", "No"})
	require.Len(t, c, 2)
	v, err := c.ValueFor(ctx, "Temp")
	require.NoError(t, err)
	assert.Equal(t, "Hot", v)
	_, err = c.ValueFor(ctx, "Play")
	assert.ErrorIs(t, err, ErrUndefinedValue)
}
