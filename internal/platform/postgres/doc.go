// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus the embedded schema migrations for the database.
package postgres
