package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

// MaxRowInsertionsPerStatement is the maximum number of rows that WriteSet
// inserts with a single insert command. Sets with more rows take several
// commands.
const MaxRowInsertionsPerStatement = 10

/*
Adapter is the interface of the database specific operations the
package relies on.
*/
type Adapter interface {
	// ColumnName takes a label and returns the identifier of the column
	// holding its values, or an error if the label cannot name a column.
	ColumnName(string) (string, error)
	// ListColumns returns the column names of the given table in
	// definition order.
	ListColumns(ctx context.Context, table string) ([]string, error)
	// Placeholder returns the bind parameter for the n-th argument of a
	// statement, starting at 1.
	Placeholder(n int) string
	// DB returns the database handle of the adapter
	DB() *sql.DB
	// Close releases the database handle
	Close() error
}

/*
ReadSet takes a context, an Adapter, a table name and a slice of
column labels and returns the dataset.Set with the values of those
columns for every row of the table. If no labels are given, all the
columns of the table are read in definition order. The last label is
the class.

Values are read as text. A NULL value is reported as a malformed row.
*/
func ReadSet(ctx context.Context, a Adapter, table string, labels []string) (*dataset.Set, error) {
	var err error
	if len(labels) == 0 {
		labels, err = a.ListColumns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("listing columns of table %s: %v", table, err)
		}
	}
	columns, err := columnNames(a, labels)
	if err != nil {
		return nil, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, fmt.Errorf("invalid table name: %v", err)
	}
	query := fmt.Sprintf(`SELECT "%s" FROM "%s"`, strings.Join(columns, `", "`), tableName)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var result []dataset.Row
	for i := 1; rows.Next(); i++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for j := range values {
			dest[j] = &values[j]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", i, table, err)
		}
		row := make(dataset.Row, len(columns))
		for j, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("row %d of table %s: %w: no value for %s", i, table, dataset.ErrMalformedRow, labels[j])
			}
			row[j] = v.String
		}
		result = append(result, row)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	s := dataset.New(labels, result)
	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return s, nil
}

/*
WriteSet takes a context, an Adapter, a table name and a dataset.Set
and stores the set on the table, creating it if it does not exist. It
returns the number of rows written and an error if not all of them
could be written.
*/
func WriteSet(ctx context.Context, a Adapter, table string, s *dataset.Set) (int, error) {
	columns, err := columnNames(a, s.Labels)
	if err != nil {
		return 0, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return 0, fmt.Errorf("invalid table name: %v", err)
	}
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (`, tableName))
	for i, c := range columns {
		if i > 0 {
			createStmtBuf.WriteString(", ")
		}
		createStmtBuf.WriteString(fmt.Sprintf(`"%s" TEXT NOT NULL`, c))
	}
	createStmtBuf.WriteString(")")
	_, err = a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return 0, fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	insertStmtStart := fmt.Sprintf(`INSERT INTO "%s" ("%s") VALUES `, tableName, strings.Join(columns, `", "`))
	written := 0
	for written < len(s.Rows) {
		end := written + MaxRowInsertionsPerStatement
		if end > len(s.Rows) {
			end = len(s.Rows)
		}
		chunk := s.Rows[written:end]
		var insertStmtBuf bytes.Buffer
		insertStmtBuf.WriteString(insertStmtStart)
		args := make([]interface{}, 0, len(chunk)*len(columns))
		for i, r := range chunk {
			if len(r) != len(columns) {
				return written, fmt.Errorf("%w %d: has %d values, expected %d", dataset.ErrMalformedRow, written+i+1, len(r), len(columns))
			}
			if i > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString("(")
			for j, v := range r {
				if j > 0 {
					insertStmtBuf.WriteString(", ")
				}
				args = append(args, v)
				insertStmtBuf.WriteString(a.Placeholder(len(args)))
			}
			insertStmtBuf.WriteString(")")
		}
		_, err = a.DB().ExecContext(ctx, insertStmtBuf.String(), args...)
		if err != nil {
			return written, fmt.Errorf("inserting rows %d to %d: %v", written+1, end, err)
		}
		written = end
	}
	return written, nil
}

func columnNames(a Adapter, labels []string) ([]string, error) {
	columns := make([]string, 0, len(labels))
	for _, l := range labels {
		c, err := a.ColumnName(l)
		if err != nil {
			return nil, fmt.Errorf("invalid column for %s: %v", l, err)
		}
		columns = append(columns, c)
	}
	return columns, nil
}
