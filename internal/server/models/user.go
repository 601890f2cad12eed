// Package models defines server-side entities persisted in the database.
package models

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           string `json:"-"`
	Email        string `json:"-"`
	PasswordHash string `json:"-"`
}
