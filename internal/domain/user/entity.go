package user

import "time"

// User represents a registered account.
type User struct {
	ID           int64  // ID is the unique identifier for the user
	Email        string // Email is unique, compared case-sensitively as stored
	PasswordHash string // PasswordHash is the argon2id hash, never the plaintext
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the caller resolved by the token gate from a verified bearer token.
type Identity struct {
	User *User
}

// UserID returns the authenticated user's ID.
func (i Identity) UserID() int64 {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// Patch holds a partial profile update; nil fields are left unchanged.
type Patch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}
