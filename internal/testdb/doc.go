//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured and applies the embedded migrations once per
// process. Each test then runs inside WithTx, whose transaction is always
// rolled back, so tests never observe each other's rows.
//
// These helpers are only compiled with the integration build tag:
//
//	DATABASE_URL=postgres://... go test -tags=integration ./...
package testdb
