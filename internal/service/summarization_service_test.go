package service

import (
	"context"
	"errors"
	"testing"

	"notemark-be/internal/apperror"
	"notemark-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("returns provider output", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		provider := &stubProvider{reply: "A short list of groceries."}
		svc := NewSummarizationService(factory, provider, nil, 0)
		userId := uuid.New()
		note := seedNote(t, factory, userId, "milk, eggs, bread")

		res, err := svc.Summarize(ctx, userId, note.Id)
		assert.NoError(t, err)
		assert.Equal(t, note.Id, res.Note.Id)
		assert.Equal(t, "A short list of groceries.", res.Summary)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("unknown note is not found", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewSummarizationService(factory, &stubProvider{}, nil, 0)

		_, err := svc.Summarize(ctx, uuid.New(), uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("provider failure surfaces as upstream", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		provider := &stubProvider{err: errors.New("quota exceeded")}
		svc := NewSummarizationService(factory, provider, nil, 0)
		userId := uuid.New()
		note := seedNote(t, factory, userId, "whatever")

		_, err := svc.Summarize(ctx, userId, note.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindUpstream), "got %v", err)
	})
}
