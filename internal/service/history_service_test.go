package service

import (
	"context"
	"testing"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHistoryRecord(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewHistoryService(factory)
	uow := factory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Id:        uuid.New(),
		Title:     "groceries",
		Content:   "milk, eggs",
		UserId:    uuid.New(),
		CreatedAt: time.Now(),
	}

	revision, err := svc.Record(ctx, uow, note, "Note created: "+note.Id.String()+", "+note.Title)
	assert.NoError(t, err)
	assert.Equal(t, note.Id, revision.NoteId)
	assert.Equal(t, "groceries", revision.NoteTitle)
	assert.Equal(t, "milk, eggs", revision.NoteContent)

	// Editing the note afterwards must not bleed into the stored snapshot.
	note.Content = "milk, eggs, bread"
	stored, err := svc.GetVersionById(ctx, revision.Id)
	assert.NoError(t, err)
	assert.Equal(t, "milk, eggs", stored.NoteContent)
}

func TestGetNoteVersions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty history reports not found", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewHistoryService(factory)

		_, err := svc.GetNoteVersions(ctx, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("versions come back oldest first", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewHistoryService(factory)
		uow := factory.NewUnitOfWork(ctx)

		note := &entity.Note{Id: uuid.New(), Title: "draft", UserId: uuid.New()}
		base := time.Now()
		descriptions := []string{"Note created", "Note updated", "Note deleted"}
		for i, desc := range descriptions {
			revision := &entity.Revision{
				Id:             uuid.New(),
				NoteId:         note.Id,
				NoteTitle:      note.Title,
				RevDescription: desc,
				CreatedAt:      base.Add(time.Duration(i) * time.Second),
			}
			assert.NoError(t, uow.RevisionRepository().Create(ctx, revision))
		}

		revisions, err := svc.GetNoteVersions(ctx, note.Id)
		assert.NoError(t, err)
		assert.Len(t, revisions, 3)
		for i, desc := range descriptions {
			assert.Equal(t, desc, revisions[i].RevDescription)
		}
	})
}

func TestGetVersionById(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := NewHistoryService(factory)

	_, err := svc.GetVersionById(ctx, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
