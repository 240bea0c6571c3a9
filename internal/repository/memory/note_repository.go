package memory

import (
	"context"
	"time"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type noteRepository struct {
	store *Store
}

func matchNote(note *entity.Note, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return note.Id == s.ID
	case specification.ByIDs:
		return containsID(s.IDs, note.Id)
	case specification.UserOwnedBy:
		return note.UserId == s.UserID
	case specification.ByFolderID:
		return note.FolderId != nil && *note.FolderId == s.FolderID
	case specification.ByTitle:
		return note.Title == s.Title
	case specification.NotDeleted:
		return !note.IsDeleted
	default:
		return true
	}
}

func lessNote(a, b *entity.Note, field string) bool {
	switch field {
	case "title":
		return a.Title < b.Title
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func (r *noteRepository) filter(specs []specification.Specification) []*entity.Note {
	var matched []*entity.Note
	for _, note := range r.store.notes {
		if note.IsDeleted {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchNote(note, spec) {
				ok = false
				break
			}
		}
		if ok {
			copied := *note
			matched = append(matched, &copied)
		}
	}
	sortSlice(matched, extractOrdering(specs), lessNote)
	return matched
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *note
	r.store.notes[note.Id] = &copied
	return nil
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *note
	r.store.notes[note.Id] = &copied
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if note, ok := r.store.notes[id]; ok {
		now := time.Now()
		note.IsDeleted = true
		note.DeletedAt = &now
	}
	return nil
}

func (r *noteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := r.filter(specs)
	if len(matched) == 0 {
		return nil, nil
	}
	return matched[0], nil
}

func (r *noteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.filter(specs), nil
}

func (r *noteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.filter(specs))), nil
}

func (r *noteRepository) ReplaceTags(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.noteTags[noteId] = append([]uuid.UUID(nil), tagIds...)
	return nil
}

func (r *noteRepository) FindTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var tags []*entity.Tag
	for _, tagId := range r.store.noteTags[noteId] {
		if tag, ok := r.store.tags[tagId]; ok && !tag.IsDeleted {
			copied := *tag
			tags = append(tags, &copied)
		}
	}
	return tags, nil
}
