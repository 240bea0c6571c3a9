package controller

import (
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRenderController interface {
	RegisterRoutes(r fiber.Router)
	RenderNote(ctx *fiber.Ctx) error
}

type renderController struct {
	renderService service.IRenderService
	jwtGuard      fiber.Handler
}

func NewRenderController(renderService service.IRenderService, jwtGuard fiber.Handler) IRenderController {
	return &renderController{
		renderService: renderService,
		jwtGuard:      jwtGuard,
	}
}

func (c *renderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/render/v1")
	h.Use(c.jwtGuard)
	h.Get("note/:note_id", c.RenderNote)
}

func (c *renderController) RenderNote(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserId(ctx)
	if err != nil {
		return err
	}
	noteId, err := serverutils.ParamUUID(ctx, "note_id")
	if err != nil {
		return err
	}

	res, etag, err := c.renderService.Render(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderETag, etag)
	if ctx.Get(fiber.HeaderIfNoneMatch) == etag {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render note", res))
}
