package model

import "time"

// User is an account allowed to sign in to the admin panel.
type User struct {
	Base
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"`
	Role        Role       `json:"role" db:"role"`
	Permissions []string   `json:"permissions" db:"permissions"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLogin   *time.Time `json:"lastLogin" db:"last_login"`
}

// Can reports whether u may perform task.
func (u *User) Can(task Task) bool {
	return CanPerform(u.Role, u.Permissions, task)
}
