package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gin-user-rpc/internal/domain"
	"gin-user-rpc/internal/repo"
)

func newService(t *testing.T) (*Service, *repo.UserRepo) {
	t.Helper()
	r := repo.NewUserRepo(Seed()...)
	return NewService(r, zaptest.NewLogger(t)), r
}

func TestService_FreshList(t *testing.T) {
	s, _ := newService(t)
	assert.Equal(t, Seed(), s.List())
}

func TestService_Create(t *testing.T) {
	s, r := newService(t)

	u, err := s.Create(domain.NewUser{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 3, Name: "Carol", Email: "carol@example.com"}, u)
	assert.Len(t, s.List(), 3)
	assert.Equal(t, 4, r.NextID())
}

func TestService_CreateRejectsWithoutMutation(t *testing.T) {
	s, r := newService(t)

	_, err := s.Create(domain.NewUser{Name: "", Email: "x@x.com"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, s.List(), 2)
	assert.Equal(t, 3, r.NextID())
}

func TestService_IDsStrictlyIncrease(t *testing.T) {
	s, _ := newService(t)
	last := 2
	for i := 0; i < 5; i++ {
		u, err := s.Create(domain.NewUser{Name: "n", Email: "n@example.com"})
		require.NoError(t, err)
		assert.Greater(t, u.ID, last)
		last = u.ID
		if i%2 == 0 {
			require.NoError(t, s.Delete(u.ID))
		}
	}
}

func TestService_Get(t *testing.T) {
	s, _ := newService(t)

	u, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", u.Name)

	_, err = s.Get(99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestService_Update(t *testing.T) {
	t.Run("email only", func(t *testing.T) {
		s, _ := newService(t)
		u, err := s.Update(1, domain.UserPatch{Email: str("newalice@example.com")})
		require.NoError(t, err)
		assert.Equal(t, domain.User{ID: 1, Name: "Alice", Email: "newalice@example.com"}, u)
	})
	t.Run("name only keeps email", func(t *testing.T) {
		s, _ := newService(t)
		_, err := s.Update(2, domain.UserPatch{Name: str("Robert")})
		require.NoError(t, err)
		got, err := s.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "Robert", got.Name)
		assert.Equal(t, "bob@example.com", got.Email)
	})
	t.Run("invalid field applies nothing", func(t *testing.T) {
		s, _ := newService(t)
		_, err := s.Update(1, domain.UserPatch{Name: str("Alicia"), Email: str("broken")})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		got, err := s.Get(1)
		require.NoError(t, err)
		assert.Equal(t, Seed()[0], got)
	})
	t.Run("unknown id", func(t *testing.T) {
		s, _ := newService(t)
		_, err := s.Update(42, domain.UserPatch{Name: str("Ghost")})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Equal(t, Seed(), s.List())
	})
}

func TestService_DeleteTwice(t *testing.T) {
	s, _ := newService(t)

	require.NoError(t, s.Delete(2))
	assert.ErrorIs(t, s.Delete(2), domain.ErrUserNotFound)

	_, err := s.Get(2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	for _, u := range s.List() {
		assert.NotEqual(t, 2, u.ID)
	}
}
