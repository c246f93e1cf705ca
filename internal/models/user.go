package models

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/desertthunder/playharmony/internal/shared"
)

// Role is the user's position in the school.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// ParseRole converts a case-insensitive role name to a [Role].
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, s)
}

// Next returns the role after r, wrapping around.
func (r Role) Next() Role {
	for i, known := range Roles {
		if known == r {
			return Roles[(i+1)%len(Roles)]
		}
	}
	return RoleStudent
}

func (r Role) String() string { return string(r) }

// User is a person registered in the library.
type User struct {
	record
	name     string
	surname  string
	email    string
	category string
	role     Role
	photo    string
}

// NewUser creates a student with the given email and name. Other fields are set with the setters.
func NewUser(sequence int, email, name string) *User {
	return &User{
		record: newRecord(sequence),
		email:  shared.NormalizeEmail(email),
		name:   shared.NormalizeText(name),
		role:   RoleStudent,
	}
}

func (u *User) Name() string     { return u.name }
func (u *User) Surname() string  { return u.surname }
func (u *User) Email() string    { return u.email }
func (u *User) Category() string { return u.category }
func (u *User) Role() Role       { return u.role }
func (u *User) Photo() string    { return u.photo }

func (u *User) SetName(name string)         { u.name = shared.NormalizeText(name) }
func (u *User) SetSurname(surname string)   { u.surname = shared.NormalizeText(surname) }
func (u *User) SetEmail(email string)       { u.email = shared.NormalizeEmail(email) }
func (u *User) SetCategory(category string) { u.category = shared.NormalizeText(category) }
func (u *User) SetRole(role Role)           { u.role = role }
func (u *User) SetPhoto(photo string)       { u.photo = strings.TrimSpace(photo) }

// FullName joins name and surname.
func (u *User) FullName() string {
	return strings.TrimSpace(u.name + " " + u.surname)
}

// Validate checks required fields, the email format and the role.
func (u *User) Validate() error {
	if u.name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}
	if err := ValidateEmail(u.email); err != nil {
		return err
	}
	if _, err := ParseRole(string(u.role)); err != nil {
		return err
	}
	return nil
}

// ValidateEmail accepts bare addresses of the form local@domain.tld.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", shared.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed email %q", shared.ErrInvalidInput, email)
	}
	_, domain, _ := strings.Cut(email, "@")
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: email domain %q has no top-level domain", shared.ErrInvalidInput, domain)
	}
	return nil
}
