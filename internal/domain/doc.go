// Package domain holds the User and Bookmark records, their partial-update
// types and the validation rules shared by the service and store layers.
package domain
