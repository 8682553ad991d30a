package middleware

import (
	"errors"
	"net/http"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized handler for errors that escape a
// route. Known failure paths (validation, not-found, empty
// submissions) are resolved inside the handlers; whatever reaches this
// point is logged and rendered as a plain error page.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		status := http.StatusInternalServerError
		message := "服务器内部错误"

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			status = mapDomainErrorToHTTPStatus(domainErr)
			message = domainErr.Message
			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(domainErr.Err),
			)
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
			log.Warn("HTTP error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("path", c.Path()),
				zap.String("message", fiberErr.Message),
			)
		default:
			log.Error("Unknown error occurred",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if renderErr := c.Status(status).Render("error", fiber.Map{
			"Status":  status,
			"Message": message,
		}); renderErr != nil {
			// No views engine (or a broken template): degrade to text.
			return c.Status(status).SendString(message)
		}
		return nil
	}
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
