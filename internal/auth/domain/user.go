package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the request-scoped identity bound by the authentication
// middleware once a bearer token has been validated and resolved. It carries
// only what downstream ownership checks need, never the password hash.
type Principal struct {
	UserID string
	Email  string
}
