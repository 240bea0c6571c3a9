package service

import (
	"context"
	"fmt"
	"time"

	"notemark-be/internal/apperror"
	"notemark-be/internal/dto"
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/repository/specification"
	"notemark-be/internal/repository/unitofwork"
	"notemark-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const summaryPrompt = "Summarize the following note in a few concise sentences. " +
	"Respond with the summary only, no preamble.\n\nTitle: %s\n\n%s"

type ISummarizationService interface {
	Summarize(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.SummarizeNoteResponse, error)
}

type summarizationService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   llm.Provider
	rdb        *redis.Client
	cacheTTL   time.Duration
}

// NewSummarizationService builds the summarizer. rdb may be nil, in which
// case every request goes to the provider.
func NewSummarizationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	rdb *redis.Client,
	cacheTTL time.Duration,
) ISummarizationService {
	return &summarizationService{
		uowFactory: uowFactory,
		provider:   provider,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
	}
}

// summaryCacheKey is tied to the content's etag, so an edited note misses the
// cache and gets a fresh summary.
func summaryCacheKey(noteId uuid.UUID, content string) string {
	return fmt.Sprintf("summary:%s:%s", noteId, serverutils.GenerateETag(content))
}

func (s *summarizationService) Summarize(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.SummarizeNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note %s not found", noteId)
	}

	res := &dto.SummarizeNoteResponse{
		Note: dto.SummarizedNote{Id: note.Id, Title: note.Title},
	}

	key := summaryCacheKey(note.Id, note.Content)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			res.Summary = cached
			return res, nil
		}
	}

	summary, err := s.provider.Generate(ctx, fmt.Sprintf(summaryPrompt, note.Title, note.Content))
	if err != nil {
		return nil, apperror.Upstream(err, "summarization provider request failed")
	}
	res.Summary = summary

	if s.rdb != nil {
		// Cache write failure only costs a recompute next time.
		_ = s.rdb.Set(ctx, key, summary, s.cacheTTL).Err()
	}

	return res, nil
}
