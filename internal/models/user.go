package models

import "github.com/google/uuid"

// User represents a user of the store.
type User struct {
	UUID     uuid.UUID `json:"uuid" gorm:"primaryKey;type:varchar(36)"`
	Username string    `json:"username" gorm:"type:varchar(255)"`
	Email    string    `json:"email" gorm:"type:varchar(255)"`
	Password string    `json:"password" gorm:"type:varchar(255)"` // opaque, returned as stored
}

// Key returns the user's identifier.
func (u User) Key() uuid.UUID { return u.UUID }

// CreateUser is the body of POST /users/.
type CreateUser struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Build creates a User with the given identifier.
func (d CreateUser) Build(id uuid.UUID) User {
	return User{
		UUID:     id,
		Username: deref(d.Username),
		Email:    deref(d.Email),
		Password: deref(d.Password),
	}
}

// UpdateUser is the body of PUT/PATCH /users/:id.
type UpdateUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Apply overwrites the user fields present in the patch.
func (p UpdateUser) Apply(u *User) {
	set(&u.Username, p.Username)
	set(&u.Email, p.Email)
	set(&u.Password, p.Password)
}
