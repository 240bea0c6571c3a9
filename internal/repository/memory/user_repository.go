package memory

import (
	"context"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
)

type userRepository struct {
	store *Store
}

func matchUser(user *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return user.Id == s.ID
	case specification.ByEmail:
		return user.Email == s.Email
	case specification.ByUsername:
		return user.Username == s.Username
	case specification.NotDeleted:
		return !user.IsDeleted
	default:
		return true
	}
}

func (r *userRepository) filter(specs []specification.Specification) []*entity.User {
	var matched []*entity.User
	for _, user := range r.store.users {
		if user.IsDeleted {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchUser(user, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *user
			matched = append(matched, &copied)
		}
	}
	return matched
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}
