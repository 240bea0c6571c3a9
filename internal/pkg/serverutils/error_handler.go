package serverutils

import (
	"errors"

	"notemark-be/internal/apperror"
	"notemark-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps apperror kinds to HTTP status codes so
// controllers can return service errors unchanged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := apperror.StatusCode(err)
		if status == fiber.StatusInternalServerError {
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(status).JSON(ErrorResponse(status, "internal server error"))
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
