/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/set/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const listColumnsQuery = `SELECT column_name FROM information_schema.columns
	WHERE table_schema = current_schema() AND table_name = $1
	ORDER BY ordinal_position`

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(label string) (string, error) {
	if label == "" {
		return "", fmt.Errorf("empty names cannot be used as column names")
	}
	if strings.ContainsAny(label, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, label)
	}
	return label, nil
}

func (a *adapter) ListColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, listColumnsQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	err = rows.Err()
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("table %s does not exist or has no columns", table)
	}
	return result, nil
}

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Close() error {
	return a.db.Close()
}
