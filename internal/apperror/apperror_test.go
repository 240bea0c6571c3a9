package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("note missing"), fiber.StatusNotFound},
		{"already fixed", AlreadyFixed("issue done"), fiber.StatusBadRequest},
		{"stale offset", StaleOffset("span moved"), fiber.StatusConflict},
		{"upstream", Upstream(errors.New("refused"), "grammar source unavailable"), fiber.StatusBadGateway},
		{"validation", Validation("bad field"), fiber.StatusBadRequest},
		{"unauthorized", Unauthorized("no token"), fiber.StatusUnauthorized},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"nil-ish unknown", fmt.Errorf("wrapped: %w", errors.New("boom")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("fix failed: %w", StaleOffset("span [8,13) no longer fits"))
	assert.True(t, IsKind(err, KindStaleOffset))
	assert.Equal(t, KindStaleOffset, KindOf(err))
}

func TestUpstreamUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream(cause, "grammar source unavailable")
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "grammar source unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}
