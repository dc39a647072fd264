// Package store declares the typed data-access interfaces used by the
// services and the errors every implementation reports. Implementations
// live under internal/platform.
package store
