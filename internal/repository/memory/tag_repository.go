package memory

import (
	"context"
	"time"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type tagRepository struct {
	store *Store
}

func matchTag(tag *entity.Tag, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return tag.Id == s.ID
	case specification.ByIDs:
		return containsID(s.IDs, tag.Id)
	case specification.ByName:
		return tag.Name == s.Name
	case specification.NotDeleted:
		return !tag.IsDeleted
	default:
		return true
	}
}

func lessTag(a, b *entity.Tag, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (r *tagRepository) filter(specs []specification.Specification) []*entity.Tag {
	var matched []*entity.Tag
	for _, tag := range r.store.tags {
		if tag.IsDeleted {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchTag(tag, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *tag
			matched = append(matched, &copied)
		}
	}
	sortSlice(matched, extractOrdering(specs), lessTag)
	return matched
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *tag
	r.store.tags[tag.Id] = &copied
	return nil
}

func (r *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *tag
	r.store.tags[tag.Id] = &copied
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if tag, ok := r.store.tags[id]; ok {
		now := time.Now()
		tag.IsDeleted = true
		tag.DeletedAt = &now
	}
	return nil
}

func (r *tagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *tagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs), nil
}

func (r *tagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}
