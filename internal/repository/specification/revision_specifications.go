package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNoteID filters revisions belonging to a note
type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// ByVersionID filters issues bound to a revision
type ByVersionID struct {
	VersionID uuid.UUID
}

func (s ByVersionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("version_id = ?", s.VersionID)
}

// OpenIssues keeps only issues that have not been fixed yet
type OpenIssues struct{}

func (s OpenIssues) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("fixed = ?", false)
}
