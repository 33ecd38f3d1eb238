package auth

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// Credential carries a login attempt.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyEmailRequest carries a signed verification token from the emailed link.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// AccountRequest carries the admin create/update form for accounts.
type AccountRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin user"`
	Verified  bool   `json:"verified"`
}

// ResetPasswordRequest carries an admin password reset.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}
