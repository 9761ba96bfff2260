package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordForm struct {
	NewPassword        string `json:"newPassword" validate:"required,min=6,max=16,hasupper,hassymbol"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required,eqfield=NewPassword"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	errs := v.Validate(passwordForm{NewPassword: "Pass1!", ConfirmNewPassword: "Pass1!"})
	assert.Nil(t, errs)
}

func TestValidate_AggregatesAllFailingRules(t *testing.T) {
	v := New()

	// "abcdef" satisfies the length bounds but violates both character rules;
	// both must be reported on the same pass.
	errs := v.Validate(passwordForm{NewPassword: "abcdef", ConfirmNewPassword: "abcdef"})
	require.NotNil(t, errs)

	assert.True(t, errs.Has("newPassword", "hasupper"))
	assert.True(t, errs.Has("newPassword", "hassymbol"))
	assert.Len(t, errs.ByField("newPassword"), 2)
}

func TestValidate_LengthBoundsInclusive(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"exactly 6", "Pass1!", true},
		{"exactly 16", "Passworddddd12!!", true},
		{"below minimum", "Pa1!x", false},
		{"above maximum", "Passwordddddd12!!", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(passwordForm{NewPassword: tc.password, ConfirmNewPassword: tc.password})
			if tc.valid {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.NotEmpty(t, errs.ByField("newPassword"))
			}
		})
	}
}

func TestValidate_ConfirmationMismatch(t *testing.T) {
	v := New()

	errs := v.Validate(passwordForm{NewPassword: "Pass1!", ConfirmNewPassword: "Pass2!"})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("confirmNewPassword", "eqfield"))
}

func TestValidate_MessagesAreHumanReadable(t *testing.T) {
	v := New()

	errs := v.Validate(passwordForm{NewPassword: "abcdef", ConfirmNewPassword: "abcdef"})
	require.NotNil(t, errs)

	msgs := errs.ByField("newPassword")
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "uppercase letter")
	assert.Contains(t, msgs[1], "special character")
}

func TestFieldErrors_Error(t *testing.T) {
	fe := &FieldErrors{Errors: []FieldError{
		{Field: "username", Tag: "required", Message: "username is a required field"},
		{Field: "password", Tag: "required", Message: "password is a required field"},
	}}

	assert.Equal(t, "validation failed: username is a required field; password is a required field", fe.Error())

	var nilErrs *FieldErrors
	assert.Equal(t, "", nilErrs.Error())
	assert.False(t, nilErrs.Has("username", "required"))
}
