package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"automart-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware recovers panics and maps unhandled errors to the
// standard response envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"path":  ctx.Path(),
					"panic": r,
				})
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"code":    500,
					"message": "Internal server error",
				})
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}

		log.Warn("http", "request failed", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": err.Error(),
		})
	}
}
