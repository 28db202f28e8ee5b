// Package user implements the user-management operations on top of a
// domain.UserRepository.
package user

import (
	"errors"

	"go.uber.org/zap"

	"gin-user-rpc/internal/domain"
)

// Seed returns the records present at process start.
func Seed() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}
}

type Service struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewService(repo domain.UserRepository, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{repo: repo, log: l.Named("user")}
}

func (s *Service) List() []domain.User { return s.repo.List() }

func (s *Service) Get(id int) (domain.User, error) { return s.repo.FindByID(id) }

func (s *Service) Create(nu domain.NewUser) (domain.User, error) {
	if err := ValidateNewUser(nu); err != nil {
		s.rejected("create", 0, err)
		return domain.User{}, err
	}
	u := s.repo.Create(nu)
	s.log.Info("user created", zap.Int("id", u.ID))
	return u, nil
}

// Update validates the patch before looking the user up; either failure
// leaves the record untouched.
func (s *Service) Update(id int, p domain.UserPatch) (domain.User, error) {
	if err := ValidatePatch(p); err != nil {
		s.rejected("update", id, err)
		return domain.User{}, err
	}
	u, err := s.repo.Update(id, p)
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("user updated", zap.Int("id", id),
		zap.Bool("name", p.Name != nil), zap.Bool("email", p.Email != nil))
	return u, nil
}

func (s *Service) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int("id", id))
	return nil
}

func (s *Service) rejected(op string, id int, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		s.log.Debug("input rejected", zap.String("op", op), zap.Int("id", id), zap.Int("issues", len(ve.Issues)))
		return
	}
	s.log.Warn("validator failure", zap.String("op", op), zap.Error(err))
}
