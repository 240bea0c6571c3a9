package service

import (
	"context"
	"errors"
	"testing"

	"notemark-be/internal/apperror"
	"notemark-be/internal/repository/memory"
	"notemark-be/pkg/grammar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	candidates []grammar.Candidate
	err        error
	checked    []string
}

func (s *stubChecker) Check(ctx context.Context, text string) ([]grammar.Candidate, error) {
	s.checked = append(s.checked, text)
	return s.candidates, s.err
}

func TestCheckGrammar(t *testing.T) {
	ctx := context.Background()

	t.Run("persists one issue per candidate", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		checker := &stubChecker{
			candidates: []grammar.Candidate{
				{
					Message:      "Possible spelling mistake found.",
					Context:      "The qick fox",
					Offset:       4,
					Length:       4,
					Replacements: []string{"quick", "sick"},
					Category:     "Possible Typo",
					Type:         "misspelling",
				},
				{
					Message: "Sentence does not start with an uppercase letter",
					Offset:  0,
					Length:  3,
					Type:    "typographical",
				},
			},
		}
		svc := NewGrammarService(factory, checker)

		revision := seedRevision(t, factory, "The qick fox")
		issues, err := svc.CheckGrammar(ctx, revision.Id)
		assert.NoError(t, err)
		assert.Len(t, issues, 2)

		assert.Equal(t, []string{"The qick fox"}, checker.checked)

		first := issues[0]
		assert.Equal(t, revision.Id, first.VersionId)
		assert.Equal(t, 4, first.Offset)
		assert.Equal(t, 4, first.Length)
		assert.Equal(t, "quick", first.Suggestion)
		assert.Equal(t, []string{"quick", "sick"}, first.Replacements)
		assert.Equal(t, "Possible Typo", first.ErrorCategory)
		assert.Equal(t, "misspelling", first.ErrorType)
		assert.False(t, first.Fixed)

		// No replacements means an empty suggestion, not a missing issue.
		assert.Equal(t, "", issues[1].Suggestion)
	})

	t.Run("clean text yields zero issues", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewGrammarService(factory, &stubChecker{})

		revision := seedRevision(t, factory, "The quick fox")
		issues, err := svc.CheckGrammar(ctx, revision.Id)
		assert.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("unknown version is not found", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewGrammarService(factory, &stubChecker{})

		_, err := svc.CheckGrammar(ctx, uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("checker failure surfaces as upstream", func(t *testing.T) {
		factory := memory.NewFactory(memory.NewStore())
		svc := NewGrammarService(factory, &stubChecker{err: errors.New("connection refused")})

		revision := seedRevision(t, factory, "whatever")
		_, err := svc.CheckGrammar(ctx, revision.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindUpstream), "got %v", err)
	})
}
