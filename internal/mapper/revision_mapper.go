package mapper

import (
	"notemark-be/internal/entity"
	"notemark-be/internal/model"
)

type RevisionMapper struct{}

func NewRevisionMapper() *RevisionMapper {
	return &RevisionMapper{}
}

func (m *RevisionMapper) ToEntity(r *model.Revision) *entity.Revision {
	if r == nil {
		return nil
	}

	return &entity.Revision{
		Id:             r.Id,
		NoteId:         r.NoteId,
		NoteTitle:      r.NoteTitle,
		NoteContent:    r.NoteContent,
		RevDescription: r.RevDescription,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *RevisionMapper) ToModel(r *entity.Revision) *model.Revision {
	if r == nil {
		return nil
	}

	return &model.Revision{
		Id:             r.Id,
		NoteId:         r.NoteId,
		NoteTitle:      r.NoteTitle,
		NoteContent:    r.NoteContent,
		RevDescription: r.RevDescription,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *RevisionMapper) ToEntities(revisions []*model.Revision) []*entity.Revision {
	entities := make([]*entity.Revision, len(revisions))
	for i, r := range revisions {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
