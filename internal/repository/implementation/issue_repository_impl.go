package implementation

import (
	"context"
	"errors"

	"notemark-be/internal/entity"
	"notemark-be/internal/mapper"
	"notemark-be/internal/model"
	"notemark-be/internal/repository/contract"
	"notemark-be/internal/repository/scope"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IssueMapper
}

func NewIssueRepository(db *gorm.DB) contract.IssueRepository {
	return &IssueRepositoryImpl{
		db:     db,
		mapper: mapper.NewIssueMapper(),
	}
}

func (r *IssueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IssueRepositoryImpl) Create(ctx context.Context, issue *entity.Issue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *IssueRepositoryImpl) Update(ctx context.Context, issue *entity.Issue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *IssueRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Issue{}, id).Error
}

func (r *IssueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Issue, error) {
	var m model.Issue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IssueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Issue, error) {
	var models []*model.Issue
	// Listings expose a deleted flag, so soft-deleted rows stay visible.
	// Callers pass specification.NotDeleted to see live issues only.
	query := r.applySpecifications(scope.WithSoftDeleted(r.db.WithContext(ctx)), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *IssueRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Issue{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
