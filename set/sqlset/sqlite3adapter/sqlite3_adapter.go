/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/set/sqlset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const listColumnsQuery = `SELECT name FROM pragma_table_info(?) ORDER BY cid`

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqlset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
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

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Close() error {
	return a.db.Close()
}
