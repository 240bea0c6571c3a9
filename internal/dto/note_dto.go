package dto

import (
	"time"

	"github.com/google/uuid"
)

type TagItem struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateNoteRequest struct {
	Title    string      `json:"title" validate:"required"`
	Content  string      `json:"content"`
	FolderId *uuid.UUID  `json:"folder_id"`
	TagIds   []uuid.UUID `json:"tag_ids"`
}

type CreateNoteResponse struct {
	Id         uuid.UUID `json:"id"`
	RevisionId uuid.UUID `json:"revision_id"`
}

type ShowNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	FolderId  *uuid.UUID `json:"folder_id"`
	Tags      []TagItem  `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   string      `json:"title" validate:"required"`
	Content string      `json:"content"`
	TagIds  []uuid.UUID `json:"tag_ids"`
}

type UpdateNoteResponse struct {
	Id         uuid.UUID `json:"id"`
	RevisionId uuid.UUID `json:"revision_id"`
}

type NoteListItem struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	FolderId  *uuid.UUID `json:"folder_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type PublishRenderNoteMessage struct {
	NoteId uuid.UUID `json:"note_id"`
}
