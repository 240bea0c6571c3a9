package controller

import (
	"notemark-be/internal/pkg/serverutils"
	"notemark-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGrammarController interface {
	RegisterRoutes(r fiber.Router)
	CheckVersion(ctx *fiber.Ctx) error
	FixIssue(ctx *fiber.Ctx) error
}

type grammarController struct {
	grammarService service.IGrammarService
	issueService   service.IIssueService
	jwtGuard       fiber.Handler
}

func NewGrammarController(
	grammarService service.IGrammarService,
	issueService service.IIssueService,
	jwtGuard fiber.Handler,
) IGrammarController {
	return &grammarController{
		grammarService: grammarService,
		issueService:   issueService,
		jwtGuard:       jwtGuard,
	}
}

func (c *grammarController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/grammar/v1")
	h.Use(c.jwtGuard)
	h.Get("version/:version_id", c.CheckVersion)
	h.Get("fix/issue/:issue_id", c.FixIssue)
}

func (c *grammarController) CheckVersion(ctx *fiber.Ctx) error {
	versionId, err := serverutils.ParamUUID(ctx, "version_id")
	if err != nil {
		return err
	}

	issues, err := c.grammarService.CheckGrammar(ctx.Context(), versionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check grammar", toIssueResponses(issues)))
}

func (c *grammarController) FixIssue(ctx *fiber.Ctx) error {
	issueId, err := serverutils.ParamUUID(ctx, "issue_id")
	if err != nil {
		return err
	}

	revision, err := c.issueService.FixIssue(ctx.Context(), issueId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fix issue", toRevisionResponse(revision)))
}
