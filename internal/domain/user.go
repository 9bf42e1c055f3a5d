package domain

// User represents an account in the system.
// PasswordHash is the argon2id digest of the password; it must never reach
// an API response (see api.userResponse).
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Timestamps
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
