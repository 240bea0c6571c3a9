package model

import (
	"time"

	"github.com/google/uuid"
)

// Revision is a frozen snapshot of a note at the moment of a mutation.
// Rows are append-only; NoteContent is rewritten only by an issue fix.
// There is deliberately no FK cascade from notes: revisions outlive a
// note's soft delete.
type Revision struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId         uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteTitle      string    `gorm:"type:varchar(255);not null"`
	NoteContent    string    `gorm:"type:text;not null"`
	RevDescription string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Revision) TableName() string {
	return "revisions"
}
