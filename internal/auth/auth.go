package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrIncomplete is returned by Submit when a required field is empty.
var ErrIncomplete = errors.New("required field missing")

type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// Field identifies one input of the form.
type Field int

const (
	FieldUsername Field = iota
	FieldEmail
	FieldPassword
)

// Account is the in-memory identity created by a successful submit.
// Nothing is verified or stored.
type Account struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Form is the login/registration gate.
type Form struct {
	Mode     Mode
	Username string
	Email    string
	Password string
}

// ToggleMode flips between login and registration, keeping typed values.
func (f *Form) ToggleMode() {
	if f.Mode == ModeLogin {
		f.Mode = ModeRegister
	} else {
		f.Mode = ModeLogin
	}
}

// Fields lists the inputs shown in the current mode, top to bottom.
func (f *Form) Fields() []Field {
	if f.Mode == ModeRegister {
		return []Field{FieldEmail, FieldUsername, FieldPassword}
	}
	return []Field{FieldUsername, FieldPassword}
}

// Value returns a pointer to the backing string of field, for text entry.
func (f *Form) Value(field Field) *string {
	switch field {
	case FieldEmail:
		return &f.Email
	case FieldPassword:
		return &f.Password
	default:
		return &f.Username
	}
}

// Ready reports whether the submit action should be enabled.
func (f *Form) Ready() bool {
	if blank(f.Username) || blank(f.Password) {
		return false
	}
	if f.Mode == ModeRegister && blank(f.Email) {
		return false
	}
	return true
}

// Submit turns a ready form into an Account. The password is cleared.
func (f *Form) Submit() (Account, error) {
	if !f.Ready() {
		return Account{}, ErrIncomplete
	}
	acct := Account{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(f.Username),
		CreatedAt: time.Now(),
	}
	if f.Mode == ModeRegister {
		acct.Email = strings.TrimSpace(f.Email)
	}
	f.Password = ""
	return acct, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
