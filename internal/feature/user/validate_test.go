package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gin-user-rpc/internal/domain"
)

func str(s string) *string { return &s }

func TestValidateNewUser(t *testing.T) {
	tests := map[string]struct {
		in     domain.NewUser
		fields []string
	}{
		"valid":          {in: domain.NewUser{Name: "Carol", Email: "carol@example.com"}},
		"empty name":     {in: domain.NewUser{Name: "", Email: "x@x.com"}, fields: []string{"name"}},
		"bad email":      {in: domain.NewUser{Name: "Carol", Email: "carol"}, fields: []string{"email"}},
		"missing email":  {in: domain.NewUser{Name: "Carol"}, fields: []string{"email"}},
		"everything bad": {in: domain.NewUser{}, fields: []string{"name", "email"}},
	}
	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			err := ValidateNewUser(tt.in)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.fields, issueFields(ve))
		})
	}
}

func TestValidatePatch(t *testing.T) {
	tests := map[string]struct {
		in     domain.UserPatch
		fields []string
	}{
		"empty patch":      {in: domain.UserPatch{}},
		"name only":        {in: domain.UserPatch{Name: str("Alicia")}},
		"email only":       {in: domain.UserPatch{Email: str("a@b.co")}},
		"empty name given": {in: domain.UserPatch{Name: str("")}, fields: []string{"name"}},
		"bad email given":  {in: domain.UserPatch{Email: str("nope")}, fields: []string{"email"}},
	}
	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			err := ValidatePatch(tt.in)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.fields, issueFields(ve))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateNewUser(domain.NewUser{Name: "", Email: "bad"})
	require.Error(t, err)
	assert.Equal(t, "validation failed: name: must not be empty; email: must be a valid email address", err.Error())
}

func issueFields(ve *ValidationError) []string {
	out := make([]string, 0, len(ve.Issues))
	for _, is := range ve.Issues {
		out = append(out, is.Field)
	}
	return out
}
