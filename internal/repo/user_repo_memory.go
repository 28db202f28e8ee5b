package repo

import (
	"slices"
	"sync"

	"gin-user-rpc/internal/domain"
)

// UserRepo is an in-memory, insertion-ordered user store. A single mutex
// guards both the slice and the id counter, so ids stay unique and
// nextID only ever grows.
type UserRepo struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int
}

// NewUserRepo seeds the store. nextID starts after the largest seeded id.
func NewUserRepo(seed ...domain.User) *UserRepo {
	r := &UserRepo{users: make([]domain.User, 0, len(seed)), nextID: 1}
	for _, u := range seed {
		r.users = append(r.users, u)
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *UserRepo) List() []domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.users)
}

func (r *UserRepo) FindByID(id int) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	return r.users[i], nil
}

func (r *UserRepo) Create(nu domain.NewUser) domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := domain.User{ID: r.nextID, Name: nu.Name, Email: nu.Email}
	r.nextID++
	r.users = append(r.users, u)
	return u
}

func (r *UserRepo) Update(id int, p domain.UserPatch) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	r.users[i] = p.Apply(r.users[i])
	return r.users[i], nil
}

func (r *UserRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	r.users = slices.Delete(r.users, i, i+1)
	return nil
}

// NextID reports the id the next Create will assign.
func (r *UserRepo) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextID
}

// caller holds mu
func (r *UserRepo) indexOf(id int) int {
	return slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == id })
}

var _ domain.UserRepository = (*UserRepo)(nil)
