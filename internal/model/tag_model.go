package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Tag) TableName() string {
	return "tags"
}

// NoteTag is the join row between notes and tags.
type NoteTag struct {
	NoteId uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
