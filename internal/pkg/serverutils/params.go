package serverutils

import (
	"notemark-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserId reads the authenticated user's id placed in locals by JwtMiddleware.
func UserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("invalid token subject")
	}
	return id, nil
}

func ParamUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s", name)
	}
	return id, nil
}
