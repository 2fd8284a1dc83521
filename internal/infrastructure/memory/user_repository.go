package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{s: store}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.usernameTaken(u.Username, 0) {
		return domain.ErrDuplicate
	}
	u.ID = r.s.data.nextID()
	r.s.data.users[u.ID] = *u
	return nil
}

func (r *UserRepo) usernameTaken(name string, exceptID int64) bool {
	for _, cur := range r.s.data.users {
		if cur.Username == name && cur.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.data.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if r.usernameTaken(u.Username, u.ID) {
		return domain.ErrDuplicate
	}
	r.s.data.users[u.ID] = *u
	return nil
}

func (r *UserRepo) UpdateToken(_ context.Context, id int64, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Token = &token
	r.s.data.users[id] = u
	return nil
}

func (r *UserRepo) UpdateProfileColor(_ context.Context, id int64, color string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ProfileColor = color
	r.s.data.users[id] = u
	return nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.data.users))
	for _, u := range r.s.data.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.users, id)
	return nil
}
