package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/shareit-platform/shareit-server/internal/domain"
)

// User is a registered account. The booking core only ever checks that
// a user exists; name and email are carried for the user-facing CRUD.
type User struct {
	id    uuid.UUID
	name  string
	email string

	createdAt time.Time
}

// NewUser creates a new registered user.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, domain.NewBadRequestError("user name is required")
	}
	if email == "" {
		return nil, domain.NewBadRequestError("user email is required")
	}
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, name, email string, createdAt time.Time) *User {
	return &User{id: id, name: name, email: email, createdAt: createdAt}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ApplyUpdate merges a partial update: nil fields keep their current value.
func (u *User) ApplyUpdate(name, email *string) {
	if name != nil {
		u.name = *name
	}
	if email != nil {
		u.email = *email
	}
}
