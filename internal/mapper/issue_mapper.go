package mapper

import (
	"encoding/json"
	"time"

	"notemark-be/internal/entity"
	"notemark-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IssueMapper struct{}

func NewIssueMapper() *IssueMapper {
	return &IssueMapper{}
}

func (m *IssueMapper) ToEntity(i *model.Issue) *entity.Issue {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	var replacements []string
	if len(i.Replacements) > 0 {
		// A malformed column falls back to an empty list rather than failing a read.
		_ = json.Unmarshal(i.Replacements, &replacements)
	}

	return &entity.Issue{
		Id:            i.Id,
		VersionId:     i.VersionId,
		Context:       i.Context,
		Offset:        i.Offset,
		Length:        i.Length,
		ErrorMessage:  i.ErrorMessage,
		ErrorCategory: i.ErrorCategory,
		ErrorType:     i.ErrorType,
		Suggestion:    i.Suggestion,
		Replacements:  replacements,
		Fixed:         i.Fixed,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     i.DeletedAt.Valid,
	}
}

func (m *IssueMapper) ToModel(i *entity.Issue) *model.Issue {
	if i == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if i.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *i.DeletedAt, Valid: true}
	} else if i.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	var replacements datatypes.JSON
	if i.Replacements != nil {
		if raw, err := json.Marshal(i.Replacements); err == nil {
			replacements = raw
		}
	}

	return &model.Issue{
		Id:            i.Id,
		VersionId:     i.VersionId,
		Context:       i.Context,
		Offset:        i.Offset,
		Length:        i.Length,
		ErrorMessage:  i.ErrorMessage,
		ErrorCategory: i.ErrorCategory,
		ErrorType:     i.ErrorType,
		Suggestion:    i.Suggestion,
		Replacements:  replacements,
		Fixed:         i.Fixed,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *IssueMapper) ToEntities(issues []*model.Issue) []*entity.Issue {
	entities := make([]*entity.Issue, len(issues))
	for i, issue := range issues {
		entities[i] = m.ToEntity(issue)
	}
	return entities
}
