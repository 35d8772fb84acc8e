// internal/domain/user/entity.go
package user

// User is the single account remembered for a browser session.
// Token holds the plaintext mock password.
type User struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Token      string `json:"token"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Profile is the public view of a User
type Profile struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// Profile strips the token
func (u *User) Profile() *Profile {
	if u == nil {
		return nil
	}
	return &Profile{
		Username:   u.Username,
		Email:      u.Email,
		IsLoggedIn: u.IsLoggedIn,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents profile edit data
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
