package controller

import (
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummarizationController interface {
	RegisterRoutes(r fiber.Router)
	SummarizeNote(ctx *fiber.Ctx) error
}

type summarizationController struct {
	summarizationService service.ISummarizationService
	jwtGuard             fiber.Handler
}

func NewSummarizationController(summarizationService service.ISummarizationService, jwtGuard fiber.Handler) ISummarizationController {
	return &summarizationController{
		summarizationService: summarizationService,
		jwtGuard:             jwtGuard,
	}
}

func (c *summarizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summarization/v1")
	h.Use(c.jwtGuard)
	h.Get("note/:note_id", c.SummarizeNote)
}

func (c *summarizationController) SummarizeNote(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}
	noteId, err := serverutils.ParamUUID(ctx, "note_id")
	if err != nil {
		return err
	}

	res, err := c.summarizationService.Summarize(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize note", res))
}
