package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Issue is a grammar finding bound to exactly one revision. Offset and
// Length are character positions into that revision's NoteContent as it
// was when the issue was created.
type Issue struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VersionId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Revision      *Revision      `gorm:"foreignKey:VersionId;constraint:OnDelete:CASCADE"`
	Context       string         `gorm:"type:text"`
	Offset        int            `gorm:"not null"`
	Length        int            `gorm:"not null"`
	ErrorMessage  string         `gorm:"type:text;not null"`
	ErrorCategory string         `gorm:"type:varchar(255)"`
	ErrorType     string         `gorm:"type:varchar(255)"`
	Suggestion    string         `gorm:"type:text"`
	Replacements  datatypes.JSON `gorm:"type:jsonb"`
	Fixed         bool           `gorm:"not null;default:false"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Issue) TableName() string {
	return "issues"
}
