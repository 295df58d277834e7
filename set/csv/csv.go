/*
Package csv reads training sets from CSV streams. The first record is
the header with the column labels, the last column holding the class.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
)

/*
ReadSet takes an io.Reader for a CSV stream and returns the dataset.Set
parsed from it or an error.

Values are trimmed of surrounding whitespace. Records whose values are
all empty are skipped. Records with a number of values different from
the header are reported with their line number.
*/
func ReadSet(reader io.Reader) (*dataset.Set, error) {
	var labels []string
	var rows []dataset.Row
	err := ReadSetByRow(reader, func(header []string) error {
		labels = header
		return nil
	}, func(_ int, row dataset.Row) (bool, error) {
		rows = append(rows, row)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s := dataset.New(labels, rows)
	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return s, nil
}

/*
ReadSetByRow takes an io.Reader for a CSV stream, a function to receive
the header and a lambda function on an integer and a dataset.Row that
returns a boolean value. For every non-empty record after the header the
lambda is called with the row and its line number. If the lambda returns
true the next row is processed, otherwise reading stops. An error is
returned if the stream cannot be read or a row does not match the header.
*/
func ReadSetByRow(reader io.Reader, header func([]string) error, lambda func(int, dataset.Row) (bool, error)) error {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	labels, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("reading header: %w", dataset.ErrEmptySet)
	}
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	labels = trim(labels)
	err = header(labels)
	if err != nil {
		return err
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		line, _ := r.FieldPos(0)
		row := dataset.Row(trim(record))
		if empty(row) {
			continue
		}
		if len(row) != len(labels) {
			return fmt.Errorf("line %d: %w: has %d values, expected %d", line, dataset.ErrMalformedRow, len(row), len(labels))
		}
		ok, err := lambda(line, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadSetFromFilePath takes a filepath string, opens the file to which it
points and uses ReadSet to return the dataset.Set read from it. If the
filepath is "" os.Stdin is read instead.
*/
func ReadSetFromFilePath(filepath string) (*dataset.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading training set: %v", err)
		}
		defer f.Close()
	}
	s, err := ReadSet(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return s, err
}

/*
WriteSet dumps the labels and rows of the given set onto the writer
in CSV format.
*/
func WriteSet(writer io.Writer, s *dataset.Set) error {
	w := csv.NewWriter(writer)
	err := w.Write(s.Labels)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i, r := range s.Rows {
		err = w.Write(r)
		if err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func trim(record []string) []string {
	for i, v := range record {
		record[i] = strings.TrimSpace(v)
	}
	return record
}

func empty(row dataset.Row) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
