package services

// Form types own the data a surface collects and the schema it is validated
// against. Field error keys are the json names. Confirmation fields exist
// only here; they are never transmitted.

// LoginForm is the credential pair for POST /auth/login.
type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupForm is the account-creation form. ConfirmPassword must equal
// Password and stays client-side.
type SignupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=6"`
	Password        string `json:"password" validate:"required,min=6,max=16,hasupper,hassymbol"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ResetForm requests a password reset email.
type ResetForm struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordChangeForm rotates the account credential. The old password is
// verified server-side and carries no local rules.
type PasswordChangeForm struct {
	OldPassword        string `json:"oldPassword"`
	NewPassword        string `json:"newPassword" validate:"required,min=6,max=16,hasupper,hassymbol"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required,eqfield=NewPassword"`
}
