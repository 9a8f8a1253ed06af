package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kj8726/employee-registration/internal/application/dto"
	"github.com/kj8726/employee-registration/pkg/logger"
)

// NewErrorHandler construye el ErrorHandler global de Fiber. Los *fiber.Error
// conservan su código y mensaje; cualquier otro error se registra con todo su
// detalle y el cliente recibe solo el 500 genérico.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Message: fiberErr.Message})
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Internal server error"})
	}
}
