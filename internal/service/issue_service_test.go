package service

import (
	"context"
	"testing"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/entity"
	"notemark-be/internal/repository/memory"
	"notemark-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedRevision(t *testing.T, factory *memory.Factory, content string) *entity.Revision {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	revision := &entity.Revision{
		Id:             uuid.New(),
		NoteId:         uuid.New(),
		NoteTitle:      "test note",
		NoteContent:    content,
		RevDescription: "Note updated",
		CreatedAt:      time.Now(),
	}
	if err := uow.RevisionRepository().Create(ctx, revision); err != nil {
		t.Fatalf("seed revision: %v", err)
	}
	return revision
}

func seedIssue(t *testing.T, factory *memory.Factory, versionId uuid.UUID, offset, length int, suggestion string) *entity.Issue {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	issue := &entity.Issue{
		Id:           uuid.New(),
		VersionId:    versionId,
		Offset:       offset,
		Length:       length,
		ErrorMessage: "Possible spelling mistake",
		Suggestion:   suggestion,
		Replacements: []string{suggestion},
		CreatedAt:    time.Now(),
	}
	if err := uow.IssueRepository().Create(ctx, issue); err != nil {
		t.Fatalf("seed issue: %v", err)
	}
	return issue
}

func TestSpliceSuggestion(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		offset     int
		length     int
		suggestion string
		want       string
		wantStale  bool
	}{
		{
			name:       "replace misspelled word",
			text:       "The qick fox",
			offset:     4,
			length:     4,
			suggestion: "quick",
			want:       "The quick fox",
		},
		{
			name:       "replace at start",
			text:       "helo world",
			offset:     0,
			length:     4,
			suggestion: "Hello",
			want:       "Hello world",
		},
		{
			name:       "replace at end",
			text:       "Hello worl",
			offset:     6,
			length:     4,
			suggestion: "world",
			want:       "Hello world",
		},
		{
			name:       "empty suggestion deletes span",
			text:       "Hello  world",
			offset:     5,
			length:     1,
			suggestion: "",
			want:       "Hello world",
		},
		{
			name:       "multibyte content counts characters not bytes",
			text:       "héllo wörld tst",
			offset:     12,
			length:     3,
			suggestion: "test",
			want:       "héllo wörld test",
		},
		{
			name:      "span past end is stale",
			text:      "short text",
			offset:    8,
			length:    5,
			wantStale: true,
		},
		{
			name:      "negative offset is stale",
			text:      "whatever",
			offset:    -1,
			length:    3,
			wantStale: true,
		},
		{
			name:      "negative length is stale",
			text:      "whatever",
			offset:    0,
			length:    -1,
			wantStale: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spliceSuggestion(tt.text, tt.offset, tt.length, tt.suggestion)
			if tt.wantStale {
				assert.True(t, apperror.IsKind(err, apperror.KindStaleOffset), "want stale offset, got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("splices suggestion and marks issue fixed", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		revision := seedRevision(t, factory, "The qick fox")
		issue := seedIssue(t, factory, revision.Id, 4, 4, "quick")

		patched, err := svc.FixIssue(ctx, issue.Id)
		assert.NoError(t, err)
		assert.Equal(t, "The quick fox", patched.NoteContent)

		issues, err := svc.VersionIssues(ctx, revision.Id)
		assert.NoError(t, err)
		assert.Len(t, issues, 1)
		assert.True(t, issues[0].Fixed)
		assert.NotNil(t, issues[0].UpdatedAt)
	})

	t.Run("unknown issue is not found", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		_, err := svc.FixIssue(ctx, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("second fix of the same issue is already fixed", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		revision := seedRevision(t, factory, "The qick fox")
		issue := seedIssue(t, factory, revision.Id, 4, 4, "quick")

		_, err := svc.FixIssue(ctx, issue.Id)
		assert.NoError(t, err)

		_, err = svc.FixIssue(ctx, issue.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindAlreadyFixed), "got %v", err)
	})

	t.Run("out of bounds span is stale and leaves everything untouched", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		revision := seedRevision(t, factory, "short text")
		issue := seedIssue(t, factory, revision.Id, 8, 5, "anything")

		_, err := svc.FixIssue(ctx, issue.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindStaleOffset), "got %v", err)

		// Neither the revision nor the issue changed.
		uow := factory.NewUnitOfWork(ctx)
		stored, err := uow.RevisionRepository().FindOne(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "short text", stored.NoteContent)

		issues, err := svc.VersionIssues(ctx, revision.Id)
		assert.NoError(t, err)
		assert.False(t, issues[0].Fixed)
	})

	t.Run("fix on one revision does not touch another", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		first := seedRevision(t, factory, "Helo world")
		second := seedRevision(t, factory, "Helo world")
		issue := seedIssue(t, factory, first.Id, 0, 4, "Hello")

		patched, err := svc.FixIssue(ctx, issue.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Hello world", patched.NoteContent)

		uow := factory.NewUnitOfWork(ctx)
		untouched, err := uow.RevisionRepository().FindOne(ctx, specification.ByID{ID: second.Id})
		assert.NoError(t, err)
		assert.Equal(t, "Helo world", untouched.NoteContent)
	})

	t.Run("sibling issue against rewritten content fails bounds check", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		// "Helo world" is 10 characters; after the first fix the content is
		// "Hello world" (11). A sibling whose span hangs past the original
		// end keeps failing, a sibling within bounds splices against the
		// current content.
		revision := seedRevision(t, factory, "Helo world")
		first := seedIssue(t, factory, revision.Id, 0, 4, "Hello")
		hanging := seedIssue(t, factory, revision.Id, 8, 5, "world")

		patched, err := svc.FixIssue(ctx, first.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Hello world", patched.NoteContent)

		_, err = svc.FixIssue(ctx, hanging.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindStaleOffset), "got %v", err)
	})
}

func TestVersionIssues(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result reports not found", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)

		_, err := svc.VersionIssues(ctx, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("issues come back ordered by creation time", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewIssueService(factory, nil)
		uow := factory.NewUnitOfWork(ctx)

		revision := seedRevision(t, factory, "some content here")
		base := time.Now()
		for i := 0; i < 3; i++ {
			issue := &entity.Issue{
				Id:        uuid.New(),
				VersionId: revision.Id,
				Offset:    i,
				Length:    1,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}
			assert.NoError(t, uow.IssueRepository().Create(ctx, issue))
		}

		issues, err := svc.VersionIssues(ctx, revision.Id)
		assert.NoError(t, err)
		assert.Len(t, issues, 3)
		for i := 1; i < len(issues); i++ {
			assert.False(t, issues[i].CreatedAt.Before(issues[i-1].CreatedAt))
		}
	})
}
