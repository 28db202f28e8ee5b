package client

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"gin-user-rpc/pkg/contract"
)

// UserCache is an application-side copy of the user list, for display.
// The service stays the source of truth: the cache only changes by
// re-fetching the list or by applying a response the service returned.
type UserCache struct {
	c  *Client
	sf singleflight.Group

	mu     sync.RWMutex
	users  []contract.User
	loaded bool
}

func NewUserCache(c *Client) *UserCache { return &UserCache{c: c} }

// Refresh replaces the cached list with a fresh GET /users. Concurrent
// callers share one request. On error the cached list is left as it was.
func (uc *UserCache) Refresh(ctx context.Context) ([]contract.User, error) {
	v, err, _ := uc.sf.Do("users", func() (any, error) {
		us, err := uc.c.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		uc.mu.Lock()
		uc.users = slices.Clone(us)
		uc.loaded = true
		uc.mu.Unlock()
		return us, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]contract.User)), nil
}

// Users returns a copy of the cached list and whether it was ever loaded.
func (uc *UserCache) Users() ([]contract.User, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return slices.Clone(uc.users), uc.loaded
}

// Create calls the service and appends the created record.
func (uc *UserCache) Create(ctx context.Context, in contract.CreateUserInput) (contract.User, error) {
	u, err := uc.c.CreateUser(ctx, in)
	if err != nil {
		return contract.User{}, err
	}
	uc.mu.Lock()
	uc.users = append(uc.users, u)
	uc.mu.Unlock()
	return u, nil
}

// Update calls the service and swaps in the record it returned.
func (uc *UserCache) Update(ctx context.Context, id int, in contract.UpdateUserInput) (contract.User, error) {
	u, err := uc.c.UpdateUser(ctx, id, in)
	if err != nil {
		return contract.User{}, err
	}
	uc.mu.Lock()
	if i := uc.index(id); i >= 0 {
		uc.users[i] = u
	}
	uc.mu.Unlock()
	return u, nil
}

// Delete calls the service and drops the record once it confirmed.
func (uc *UserCache) Delete(ctx context.Context, id int) error {
	res, err := uc.c.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !res.Success {
		return nil
	}
	uc.mu.Lock()
	if i := uc.index(id); i >= 0 {
		uc.users = slices.Delete(uc.users, i, i+1)
	}
	uc.mu.Unlock()
	return nil
}

// caller holds mu
func (uc *UserCache) index(id int) int {
	return slices.IndexFunc(uc.users, func(u contract.User) bool { return u.ID == id })
}
