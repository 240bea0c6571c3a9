package memory

import (
	"context"
	"time"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type issueRepository struct {
	store *Store
}

func matchIssue(issue *entity.Issue, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return issue.Id == s.ID
	case specification.ByIDs:
		return containsID(s.IDs, issue.Id)
	case specification.ByVersionID:
		return issue.VersionId == s.VersionID
	case specification.OpenIssues:
		return !issue.Fixed
	case specification.NotDeleted:
		return !issue.IsDeleted
	default:
		return true
	}
}

func lessIssue(a, b *entity.Issue, field string) bool {
	switch field {
	case "offset":
		return a.Offset < b.Offset
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// filter mirrors the GORM layer: single-row reads exclude soft-deleted
// issues, listings keep them so the deleted flag stays visible.
func (r *issueRepository) filter(specs []specification.Specification, includeDeleted bool) []*entity.Issue {
	var matched []*entity.Issue
	for _, issue := range r.store.issues {
		if issue.IsDeleted && !includeDeleted {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchIssue(issue, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *issue
			copied.Replacements = append([]string(nil), issue.Replacements...)
			matched = append(matched, &copied)
		}
	}
	sortSlice(matched, extractOrdering(specs), lessIssue)
	return matched
}

func (r *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *issue
	r.store.issues[issue.Id] = &copied
	return nil
}

func (r *issueRepository) Update(ctx context.Context, issue *entity.Issue) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *issue
	r.store.issues[issue.Id] = &copied
	return nil
}

func (r *issueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if issue, ok := r.store.issues[id]; ok {
		now := time.Now()
		issue.IsDeleted = true
		issue.DeletedAt = &now
	}
	return nil
}

func (r *issueRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Issue, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs, false)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *issueRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Issue, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs, true), nil
}

func (r *issueRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs, false))), nil
}
