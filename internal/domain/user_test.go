package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPatchApply(t *testing.T) {
	base := User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	name := "Alicia"
	email := "alicia@example.com"

	tests := map[string]struct {
		patch UserPatch
		want  User
	}{
		"empty patch keeps record": {
			patch: UserPatch{},
			want:  base,
		},
		"name only": {
			patch: UserPatch{Name: &name},
			want:  User{ID: 1, Name: "Alicia", Email: "alice@example.com"},
		},
		"email only": {
			patch: UserPatch{Email: &email},
			want:  User{ID: 1, Name: "Alice", Email: "alicia@example.com"},
		},
		"both": {
			patch: UserPatch{Name: &name, Email: &email},
			want:  User{ID: 1, Name: "Alicia", Email: "alicia@example.com"},
		},
	}
	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}
