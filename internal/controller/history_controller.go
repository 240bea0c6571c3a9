package controller

import (
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	NoteVersions(ctx *fiber.Ctx) error
	ShowVersion(ctx *fiber.Ctx) error
	VersionIssues(ctx *fiber.Ctx) error
}

type historyController struct {
	historyService service.IHistoryService
	issueService   service.IIssueService
	jwtGuard       fiber.Handler
}

func NewHistoryController(
	historyService service.IHistoryService,
	issueService service.IIssueService,
	jwtGuard fiber.Handler,
) IHistoryController {
	return &historyController{
		historyService: historyService,
		issueService:   issueService,
		jwtGuard:       jwtGuard,
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Use(c.jwtGuard)
	h.Get("version/issues/:version_id", c.VersionIssues)
	h.Get("version/:version_id", c.ShowVersion)
	h.Get(":note_id", c.NoteVersions)
}

func (c *historyController) NoteVersions(ctx *fiber.Ctx) error {
	noteId, err := serverutils.ParamUUID(ctx, "note_id")
	if err != nil {
		return err
	}

	revisions, err := c.historyService.GetNoteVersions(ctx.Context(), noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list note versions", toRevisionResponses(revisions)))
}

func (c *historyController) ShowVersion(ctx *fiber.Ctx) error {
	versionId, err := serverutils.ParamUUID(ctx, "version_id")
	if err != nil {
		return err
	}

	revision, err := c.historyService.GetVersionById(ctx.Context(), versionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show version", toRevisionResponse(revision)))
}

func (c *historyController) VersionIssues(ctx *fiber.Ctx) error {
	versionId, err := serverutils.ParamUUID(ctx, "version_id")
	if err != nil {
		return err
	}

	issues, err := c.issueService.VersionIssues(ctx.Context(), versionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list version issues", toIssueResponses(issues)))
}
