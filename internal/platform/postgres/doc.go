// Package postgres implements the store interfaces on top of database/sql
// with the pgx driver, and maps PostgreSQL error codes to store errors.
package postgres
