package models

// User represents a registered account. It is created once via registration
// and never updated or deleted afterwards.
type User struct {
	// Username is the unique account identifier and the key in the user store.
	Username string `json:"username"`

	// Password carries the plaintext password only on inbound register/login
	// requests. The store never holds it; see PasswordHash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// Email is optional and defaults to the empty string.
	Email string `json:"email"`

	// RegisteredAt is the registration timestamp in RFC 3339 form.
	RegisteredAt string `json:"registeredAt"`
}

// PublicProfile is the externally visible slice of a user record.
// It never includes credential material.
type PublicProfile struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt,omitempty"`
}

// Public returns the user's public profile.
func (u User) Public() PublicProfile {
	return PublicProfile{
		Username:     u.Username,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}
