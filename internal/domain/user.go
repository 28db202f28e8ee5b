package domain

import "errors"

var ErrUserNotFound = errors.New("User not found")

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser is the validated input of a create.
type NewUser struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// UserPatch carries the fields of a partial update; nil means "leave as is".
type UserPatch struct {
	Name  *string `validate:"omitnil,min=1"`
	Email *string `validate:"omitnil,email"`
}

func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// UserRepository keeps users in insertion order. Every method is atomic
// with respect to the collection and the id counter.
type UserRepository interface {
	List() []User
	FindByID(id int) (User, error)
	Create(nu NewUser) User
	Update(id int, p UserPatch) (User, error)
	Delete(id int) error
}
