package models

// User represents a registered marketplace user.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"-"` // never serialize
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
}

// Public returns the user's public projection, with the password stripped.
func (u User) Public() *User {
	u.Password = ""
	return &u
}

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
	City                 string `json:"city"`
	Neighborhood         string `json:"neighborhood"`
}

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
