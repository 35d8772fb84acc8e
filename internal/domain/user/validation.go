// internal/domain/user/validation.go
package user

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Password length bounds, in UTF-16 code units as browsers count them
const (
	MinPasswordLength = 8
	MaxPasswordLength = 15
)

// Form validation messages
const (
	MsgUsernameRequired = "Username is required."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordLength   = "Password length must be between 8 and 15 characters."
	MsgPasswordMismatch = "Passwords do not match."
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidationError lists every problem found in a submitted form
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

type validator struct {
	messages []string
}

func (v *validator) username(username string) {
	if strings.TrimSpace(username) == "" {
		v.messages = append(v.messages, MsgUsernameRequired)
	}
}

func (v *validator) email(email string) {
	if strings.TrimSpace(email) == "" || !emailPattern.MatchString(email) {
		v.messages = append(v.messages, MsgInvalidEmail)
	}
}

func (v *validator) password(password string) {
	n := len(utf16.Encode([]rune(password)))
	if n < MinPasswordLength || n > MaxPasswordLength {
		v.messages = append(v.messages, MsgPasswordLength)
	}
}

func (v *validator) confirm(password, confirmation string) {
	if password != confirmation {
		v.messages = append(v.messages, MsgPasswordMismatch)
	}
}

func (v *validator) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}

// Validate checks a registration form
func (r *RegisterRequest) Validate() error {
	var v validator
	v.username(r.Username)
	v.email(r.Email)
	v.password(r.Password)
	v.confirm(r.Password, r.ConfirmPassword)
	return v.err()
}

// Validate checks a login form
func (r *LoginRequest) Validate() error {
	var v validator
	v.email(r.Email)
	v.password(r.Password)
	return v.err()
}

// Validate checks a profile edit form
func (r *UpdateProfileRequest) Validate() error {
	var v validator
	v.username(r.Username)
	v.email(r.Email)
	v.password(r.Password)
	return v.err()
}
