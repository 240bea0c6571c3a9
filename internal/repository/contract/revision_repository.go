package contract

import (
	"context"

	"notemark-be/internal/entity"
	"notemark-be/internal/repository/specification"
)

type RevisionRepository interface {
	Create(ctx context.Context, revision *entity.Revision) error
	// Update persists a revision's mutated content. The issue fix service is
	// the only caller; revisions are otherwise append-only.
	Update(ctx context.Context, revision *entity.Revision) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Revision, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Revision, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
