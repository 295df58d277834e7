/*
Package prompt asks a user for the attribute values of a case to
classify, one attribute at a time.
*/
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/feature"
)

// PromptError represents an error ending a prompt
type PromptError string

// ErrQuit is returned when the user asks to quit instead of providing a value
const ErrQuit = PromptError("user quit")

// DefaultQuit is the input that makes a Terminal return ErrQuit
const DefaultQuit = "q"

func (pe PromptError) Error() string {
	return string(pe)
}

/*
Prompter is the interface for ways of asking for the value of an
attribute among a slice of possible values.
*/
type Prompter interface {
	// Ask returns one of the given values for the attribute, or ErrQuit
	// if the user wants to stop.
	Ask(ctx context.Context, attribute string, values []string) (string, error)
}

type terminal struct {
	scanner *bufio.Scanner
	w       io.Writer
	quit    string
}

/*
NewTerminal takes an io.Reader, an io.Writer and a quit string and
returns a Prompter that writes its questions on the writer and reads
the answers line by line from the reader.

Answers are trimmed of surrounding whitespace. An answer that is not
one of the possible values is rejected and asked again, unless it is
the quit string, which makes Ask return ErrQuit. Running out of input
before a valid answer makes Ask return io.ErrUnexpectedEOF.
*/
func NewTerminal(r io.Reader, w io.Writer, quit string) Prompter {
	return &terminal{bufio.NewScanner(r), w, quit}
}

func (t *terminal) Ask(ctx context.Context, attribute string, values []string) (string, error) {
	_, err := fmt.Fprintf(t.w, "Input value for attribute named: %s. Possible values are: %s\n", attribute, strings.Join(values, ", "))
	if err != nil {
		return "", err
	}
	for t.scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		line := strings.TrimSpace(t.scanner.Text())
		for _, v := range values {
			if v == line {
				fmt.Fprintf(t.w, "Chosen value %s for attribute %s\n", v, attribute)
				return v, nil
			}
		}
		if line == t.quit {
			return "", ErrQuit
		}
		_, err = fmt.Fprintf(t.w, "No such attribute value in training data. Possible values are: %s\n", strings.Join(values, ", "))
		if err != nil {
			return "", err
		}
	}
	err = t.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

/*
Sample is a feature.Sample whose values are asked with a Prompter the
first time they are needed, offering the values of a domain for the
attribute. Obtained values are remembered, so every attribute is asked
at most once.

A Sample is meant to be used by a single goroutine.
*/
type Sample struct {
	p        Prompter
	d        *feature.Domain
	obtained feature.Case
}

// NewSample takes a Prompter and a feature.Domain and returns a Sample
func NewSample(p Prompter, d *feature.Domain) *Sample {
	return &Sample{p, d, make(feature.Case)}
}

/*
ValueFor returns the value given for the attribute, asking for it if
it was not obtained yet. It returns feature.ErrUndefinedValue for
attributes outside the domain and the Prompter error if it fails.
*/
func (s *Sample) ValueFor(ctx context.Context, attribute string) (string, error) {
	if v, ok := s.obtained[attribute]; ok {
		return v, nil
	}
	values := s.d.Values(attribute)
	if values == nil {
		return "", feature.ErrUndefinedValue
	}
	v, err := s.p.Ask(ctx, attribute, values)
	if err != nil {
		return "", err
	}
	s.obtained[attribute] = v
	return v, nil
}

// Case returns the values obtained so far
func (s *Sample) Case() feature.Case {
	return s.obtained
}

func (s *Sample) String() string {
	return s.obtained.String()
}

/*
AskAll takes a context, a Prompter, a feature.Domain and a slice of
attribute labels and returns the feature.Case with the values given
for every attribute, asked in label order.
*/
func AskAll(ctx context.Context, p Prompter, d *feature.Domain, labels []string) (feature.Case, error) {
	c := make(feature.Case, len(labels))
	for _, l := range labels {
		v, err := p.Ask(ctx, l, d.Values(l))
		if err != nil {
			return nil, err
		}
		c[l] = v
	}
	return c, nil
}
