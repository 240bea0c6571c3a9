package memory

import (
	"context"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
)

type revisionRepository struct {
	store *Store
}

func matchRevision(revision *entity.Revision, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return revision.Id == s.ID
	case specification.ByIDs:
		return containsID(s.IDs, revision.Id)
	case specification.ByNoteID:
		return revision.NoteId == s.NoteID
	default:
		return true
	}
}

func lessRevision(a, b *entity.Revision, field string) bool {
	return a.CreatedAt.Before(b.CreatedAt)
}

func (r *revisionRepository) filter(specs []specification.Specification) []*entity.Revision {
	var matched []*entity.Revision
	for _, revision := range r.store.revisions {
		ok := true
		for _, spec := range specs {
			if !matchRevision(revision, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *revision
			matched = append(matched, &copied)
		}
	}
	sortSlice(matched, extractOrdering(specs), lessRevision)
	return matched
}

func (r *revisionRepository) Create(ctx context.Context, revision *entity.Revision) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *revision
	r.store.revisions[revision.Id] = &copied
	return nil
}

func (r *revisionRepository) Update(ctx context.Context, revision *entity.Revision) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *revision
	r.store.revisions[revision.Id] = &copied
	return nil
}

func (r *revisionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Revision, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *revisionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Revision, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs), nil
}

func (r *revisionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}
