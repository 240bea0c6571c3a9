package entity

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a grammar finding against one revision. Offset and Length are
// character (rune) positions into the owning revision's NoteContent as it
// was when the issue was created; they are only trustworthy until the first
// fix is applied to that revision.
type Issue struct {
	Id            uuid.UUID
	VersionId     uuid.UUID
	Context       string
	Offset        int
	Length        int
	ErrorMessage  string
	ErrorCategory string
	ErrorType     string
	Suggestion    string
	Replacements  []string
	Fixed         bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
