package contract

import (
	"context"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ReplaceTags rewrites the note's tag set in the join table.
	ReplaceTags(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error
	FindTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
}
