package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Punches in/out, tracks breaks
	RoleEmployer Role = "employer" // Reviews attendance across employees
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsEmployee checks if user punches their own attendance
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// IsEmployer checks if user can review company-wide attendance
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r Role) bool {
	return r == RoleEmployee || r == RoleEmployer
}

// Profile is the public projection of a user returned by the API
// and cached by clients alongside the session token.
type Profile struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	}
}
