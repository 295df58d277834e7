package pgadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter(t *testing.T) {
	a, err := New("postgresql://localhost/id3?sslmode=disable")
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, "$1", a.Placeholder(1))
	assert.Equal(t, "$12", a.Placeholder(12))
	c, err := a.ColumnName("Outlook")
	require.NoError(t, err)
	assert.Equal(t, "Outlook", c)
	_, err = a.ColumnName(`Out"look`)
	assert.Error(t, err)
}
