package implementation

import (
	"context"
	"errors"

	"notemark-be/internal/entity"
	"notemark-be/internal/mapper"
	"notemark-be/internal/model"
	"notemark-be/internal/repository/contract"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db        *gorm.DB
	mapper    *mapper.NoteMapper
	tagMapper *mapper.TagMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:        db,
		mapper:    mapper.NewNoteMapper(),
		tagMapper: mapper.NewTagMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Note{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteRepositoryImpl) ReplaceTags(ctx context.Context, noteId uuid.UUID, tagIds []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error; err != nil {
		return err
	}
	if len(tagIds) == 0 {
		return nil
	}
	rows := make([]model.NoteTag, 0, len(tagIds))
	for _, tagId := range tagIds {
		rows = append(rows, model.NoteTag{NoteId: noteId, TagId: tagId})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *NoteRepositoryImpl) FindTags(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", noteId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.tagMapper.ToEntities(models), nil
}
