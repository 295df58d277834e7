/*
Package sqlset reads and writes training sets stored on a SQL
database table.

Each column of the table holds the values of one attribute as text,
the last column read being the class. Database specifics (driver,
identifier validation, catalog queries and placeholders) are provided
by an Adapter, with implementations for SQLite3 and PostgreSQL on the
sqlite3adapter and pgadapter packages.
*/
package sqlset
