// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the account entity. The embedded Credential is created once at
// registration and only ever leaves the process through the persistence layer;
// every client-facing projection must drop it.
type User struct {
	ID         uint       // Auto-incremented account identifier.
	Email      string     // Login identifier, unique across accounts.
	Name       string     // Display name.
	Credential Credential // Salted password digest, never exposed.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Credential is the stored password material: a one-way digest and the random
// salt it was derived with, both hex encoded. The plaintext password is never
// stored or logged.
type Credential struct {
	PasswordHash string
	Salt         string
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public returns the projection of the user that is safe to serialize.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
