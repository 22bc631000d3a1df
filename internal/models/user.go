package models

// User is a provisioned home-banking customer. PasswordHash is a bcrypt
// hash and never leaves the process; Locked is managed by the session
// service only.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	DNI          string `json:"dni,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Locked       bool   `json:"-"`
}
