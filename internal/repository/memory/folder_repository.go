package memory

import (
	"context"
	"time"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type folderRepository struct {
	store *Store
}

func matchFolder(folder *entity.Folder, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return folder.Id == s.ID
	case specification.ByIDs:
		return containsID(s.IDs, folder.Id)
	case specification.UserOwnedBy:
		return folder.UserId == s.UserID
	case specification.ByName:
		return folder.Name == s.Name
	case specification.NotDeleted:
		return !folder.IsDeleted
	default:
		return true
	}
}

func lessFolder(a, b *entity.Folder, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (r *folderRepository) filter(specs []specification.Specification) []*entity.Folder {
	var matched []*entity.Folder
	for _, folder := range r.store.folders {
		if folder.IsDeleted {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchFolder(folder, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *folder
			matched = append(matched, &copied)
		}
	}
	sortSlice(matched, extractOrdering(specs), lessFolder)
	return matched
}

func (r *folderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *folder
	r.store.folders[folder.Id] = &copied
	return nil
}

func (r *folderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *folder
	r.store.folders[folder.Id] = &copied
	return nil
}

func (r *folderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if folder, ok := r.store.folders[id]; ok {
		now := time.Now()
		folder.IsDeleted = true
		folder.DeletedAt = &now
	}
	return nil
}

func (r *folderRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *folderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs), nil
}

func (r *folderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}
