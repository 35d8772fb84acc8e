package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
		want []string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "password1", ConfirmPassword: "password1"},
		},
		{
			name: "everything wrong",
			req:  RegisterRequest{Username: "  ", Email: "nope", Password: "short", ConfirmPassword: "other"},
			want: []string{MsgUsernameRequired, MsgInvalidEmail, MsgPasswordLength, MsgPasswordMismatch},
		},
		{
			name: "password too long",
			req:  RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "sixteen-chars-xx", ConfirmPassword: "sixteen-chars-xx"},
			want: []string{MsgPasswordLength},
		},
		{
			name: "boundary lengths accepted",
			req:  RegisterRequest{Username: "ada", Email: "a.b+c@sub.example.io", Password: "fifteen-chars-x", ConfirmPassword: "fifteen-chars-x"},
		},
		{
			name: "astral characters count twice",
			req:  RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "😀😀😀😀", ConfirmPassword: "😀😀😀😀"},
		},
		{
			name: "astral characters push past the maximum",
			req:  RegisterRequest{Username: "ada", Email: "ada@example.com", Password: "😀😀😀😀😀😀😀😀", ConfirmPassword: "😀😀😀😀😀😀😀😀"},
			want: []string{MsgPasswordLength},
		},
		{
			name: "tld too short",
			req:  RegisterRequest{Username: "ada", Email: "ada@example.c", Password: "password1", ConfirmPassword: "password1"},
			want: []string{MsgInvalidEmail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Messages)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "ada@example.com", Password: "12345678"}).Validate())

	var verr *ValidationError
	require.ErrorAs(t, (&LoginRequest{Email: "", Password: "1234567"}).Validate(), &verr)
	assert.Equal(t, []string{MsgInvalidEmail, MsgPasswordLength}, verr.Messages)
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, (&UpdateProfileRequest{Email: "ada@example.com", Password: "password1"}).Validate(), &verr)
	assert.Equal(t, []string{MsgUsernameRequired}, verr.Messages)
}
