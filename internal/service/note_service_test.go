package service

import (
	"context"
	"testing"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/memory"
	"notemark-be/pkg/grammar"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newNoteServiceHarness(factory *memory.Factory) INoteService {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService("NOTE_CONTENT_CHANGED", pubSub)
	history := NewHistoryService(factory)
	return NewNoteService(factory, history, publisher, nil)
}

func seedTag(t *testing.T, factory *memory.Factory, name string) *entity.Tag {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	tag := &entity.Tag{Id: uuid.New(), Name: name, CreatedAt: time.Now()}
	if err := uow.TagRepository().Create(ctx, tag); err != nil {
		t.Fatalf("seed tag: %v", err)
	}
	return tag
}

func TestNoteCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates note together with its first revision", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := newNoteServiceHarness(factory)
		history := NewHistoryService(factory)
		userId := uuid.New()

		res, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
			Title:   "groceries",
			Content: "milk, eggs",
		})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.Id)
		assert.NotEqual(t, uuid.Nil, res.RevisionId)

		revisions, err := history.GetNoteVersions(ctx, res.Id)
		assert.NoError(t, err)
		assert.Len(t, revisions, 1)
		assert.Equal(t, "Note created: "+res.Id.String()+", groceries", revisions[0].RevDescription)
		assert.Equal(t, "milk, eggs", revisions[0].NoteContent)
	})

	t.Run("rejects unknown tag ids", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := newNoteServiceHarness(factory)

		_, err := svc.Create(ctx, uuid.New(), &dto.CreateNoteRequest{
			Title:  "tagged",
			TagIds: []uuid.UUID{uuid.New()},
		})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation), "got %v", err)
	})

	t.Run("rejects another user's folder", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := newNoteServiceHarness(factory)
		uow := factory.NewUnitOfWork(ctx)

		folder := &entity.Folder{Id: uuid.New(), Name: "work", UserId: uuid.New(), CreatedAt: time.Now()}
		assert.NoError(t, uow.FolderRepository().Create(ctx, folder))

		_, err := svc.Create(ctx, uuid.New(), &dto.CreateNoteRequest{
			Title:    "misfiled",
			FolderId: &folder.Id,
		})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound), "got %v", err)
	})

	t.Run("attaches existing tags", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := newNoteServiceHarness(factory)
		userId := uuid.New()

		tag := seedTag(t, factory, "work")
		res, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
			Title:  "tagged",
			TagIds: []uuid.UUID{tag.Id},
		})
		assert.NoError(t, err)

		shown, err := svc.Show(ctx, userId, res.Id)
		assert.NoError(t, err)
		assert.Len(t, shown.Tags, 1)
		assert.Equal(t, "work", shown.Tags[0].Name)
	})
}

func TestNoteUpdate(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := newNoteServiceHarness(factory)
	history := NewHistoryService(factory)
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "draft", Content: "v1"})
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:      created.Id,
		Title:   "draft",
		Content: "v2",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, created.RevisionId, updated.RevisionId)

	revisions, err := history.GetNoteVersions(ctx, created.Id)
	assert.NoError(t, err)
	assert.Len(t, revisions, 2)
	assert.Equal(t, "v1", revisions[0].NoteContent)
	assert.Equal(t, "Note updated", revisions[1].RevDescription)
	assert.Equal(t, "v2", revisions[1].NoteContent)

	// Another user cannot touch the note.
	_, err = svc.Update(ctx, uuid.New(), &dto.UpdateNoteRequest{Id: created.Id, Title: "stolen"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestNoteDelete(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := newNoteServiceHarness(factory)
	history := NewHistoryService(factory)
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "doomed", Content: "bye"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, userId, created.Id))

	_, err = svc.Show(ctx, userId, created.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// History outlives the note.
	revisions, err := history.GetNoteVersions(ctx, created.Id)
	assert.NoError(t, err)
	assert.Len(t, revisions, 2)
	assert.Equal(t, "Note deleted", revisions[1].RevDescription)
}

func TestGetUserNotes(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	svc := newNoteServiceHarness(factory)
	userId := uuid.New()

	folderService := NewFolderService(factory)
	folder, err := folderService.Create(ctx, userId, &dto.CreateFolderRequest{Name: "work"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "loose"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "filed", FolderId: &folder.Id})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, uuid.New(), &dto.CreateNoteRequest{Title: "someone else's"})
	assert.NoError(t, err)

	all, err := svc.GetUserNotes(ctx, userId, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	filed, err := svc.GetUserNotes(ctx, userId, &folder.Id)
	assert.NoError(t, err)
	assert.Len(t, filed, 1)
	assert.Equal(t, "filed", filed[0].Title)
}

// TestEditCheckFixFlow walks the whole versioning loop: create, check the
// revision, fix the single finding, then watch the second fix bounce.
func TestEditCheckFixFlow(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewFactory(memory.NewStore())
	noteSvc := newNoteServiceHarness(factory)
	userId := uuid.New()

	created, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:   "greeting",
		Content: "Helo world",
	})
	assert.NoError(t, err)

	checker := &stubChecker{
		candidates: []grammar.Candidate{
			{
				Message:      "Possible spelling mistake found.",
				Offset:       0,
				Length:       4,
				Replacements: []string{"Hello"},
				Category:     "Possible Typo",
				Type:         "misspelling",
			},
		},
	}
	grammarSvc := NewGrammarService(factory, checker)
	issueSvc := NewIssueService(factory, nil)

	issues, err := grammarSvc.CheckGrammar(ctx, created.RevisionId)
	assert.NoError(t, err)
	assert.Len(t, issues, 1)

	patched, err := issueSvc.FixIssue(ctx, issues[0].Id)
	assert.NoError(t, err)
	assert.Equal(t, "Hello world", patched.NoteContent)

	// The note itself keeps its original content; only the revision changed.
	shown, err := noteSvc.Show(ctx, userId, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Helo world", shown.Content)

	_, err = issueSvc.FixIssue(ctx, issues[0].Id)
	assert.True(t, apperror.IsKind(err, apperror.KindAlreadyFixed), "got %v", err)
}
