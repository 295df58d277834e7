package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labels = []string{"Weather", "Temp", "Play"}

func domain() *feature.Domain {
	return feature.NewDomain(labels, []dataset.Row{
		{"Sunny", "Hot", "No"},
		{"Sunny", "Mild", "Yes"},
		{"Rain", "Mild", "Yes"},
	})
}

func TestTerminalAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewTerminal(strings.NewReader("Cold\n  Mild \n"), &out, DefaultQuit)
	v, err := p.Ask(context.Background(), "Temp", []string{"Hot", "Mild"})
	require.NoError(t, err)
	assert.Equal(t, "Mild", v)
	assert.Equal(t, "Input value for attribute named: Temp. Possible values are: Hot, Mild\n"+
		"No such attribute value in training data. Possible values are: Hot, Mild\n"+
		"Chosen value Mild for attribute Temp\n", out.String())
}

func TestTerminalQuit(t *testing.T) {
	p := NewTerminal(strings.NewReader("Cold\nq\nHot\n"), io.Discard, DefaultQuit)
	_, err := p.Ask(context.Background(), "Temp", []string{"Hot", "Mild"})
	assert.ErrorIs(t, err, ErrQuit)

	p = NewTerminal(strings.NewReader("exit\n"), io.Discard, "exit")
	_, err = p.Ask(context.Background(), "Temp", []string{"Hot", "Mild"})
	assert.ErrorIs(t, err, ErrQuit)
}

func TestTerminalQuitStringCanBeAValue(t *testing.T) {
	p := NewTerminal(strings.NewReader("q\n"), io.Discard, DefaultQuit)
	v, err := p.Ask(context.Background(), "Letter", []string{"p", "q"})
	require.NoError(t, err)
	assert.Equal(t, "q", v)
}

func TestTerminalEndOfInput(t *testing.T) {
	p := NewTerminal(strings.NewReader("Cold\n"), io.Discard, DefaultQuit)
	_, err := p.Ask(context.Background(), "Temp", []string{"Hot", "Mild"})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type scriptedPrompter struct {
	answers map[string]string
	asked   []string
}

func (sp *scriptedPrompter) Ask(_ context.Context, attribute string, values []string) (string, error) {
	sp.asked = append(sp.asked, attribute)
	v, ok := sp.answers[attribute]
	if !ok {
		return "", ErrQuit
	}
	return v, nil
}

func TestSample(t *testing.T) {
	sp := &scriptedPrompter{answers: map[string]string{"Temp": "Mild"}}
	s := NewSample(sp, domain())
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		v, err := s.ValueFor(ctx, "Temp")
		require.NoError(t, err)
		assert.Equal(t, "Mild", v)
	}
	assert.Equal(t, []string{"Temp"}, sp.asked)
	assert.Equal(t, feature.Case{"Temp": "Mild"}, s.Case())

	_, err := s.ValueFor(ctx, "Wind")
	assert.ErrorIs(t, err, feature.ErrUndefinedValue)

	_, err = s.ValueFor(ctx, "Weather")
	assert.ErrorIs(t, err, ErrQuit)
}

func TestAskAll(t *testing.T) {
	sp := &scriptedPrompter{answers: map[string]string{"Weather": "Rain", "Temp": "Hot"}}
	c, err := AskAll(context.Background(), sp, domain(), labels[:2])
	require.NoError(t, err)
	assert.Equal(t, feature.Case{"Weather": "Rain", "Temp": "Hot"}, c)
	assert.Equal(t, []string{"Weather", "Temp"}, sp.asked)

	_, err = AskAll(context.Background(), &scriptedPrompter{}, domain(), labels[:2])
	assert.ErrorIs(t, err, ErrQuit)
}
