package serverutils

import (
	"errors"

	"islamic-quotes-be/internal/pkg/apperror"
	"islamic-quotes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts any error returned further down the chain
// into a status code and an ErrorBody. Server-side failures are logged with
// their cause; clients only ever see a generic message for them.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err, log)
	}
}

// ErrorHandler is the same conversion for fiber.Config.ErrorHandler, which
// sees errors raised outside the middleware chain.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		return WriteError(ctx, err, log)
	}
}

func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	status, body := Classify(err)

	if status >= fiber.StatusInternalServerError {
		log.Error("http", "Request failed", map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"request_id": ctx.GetRespHeader(fiber.HeaderXRequestID),
			"error":      err.Error(),
		})
	}

	return ctx.Status(status).JSON(body)
}

// Classify maps an error to its HTTP status and client-facing body.
func Classify(err error) (int, ErrorBody) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindInvalidArgument:
			return fiber.StatusBadRequest, ErrorResponse(appErr.Message, appErr.Detail)
		case apperror.KindNotFound:
			return fiber.StatusNotFound, ErrorResponse(appErr.Message, appErr.Detail)
		case apperror.KindMethodNotAllowed:
			return fiber.StatusMethodNotAllowed, ErrorResponse("Method not allowed", "")
		case apperror.KindDataUnavailable:
			return fiber.StatusInternalServerError, ErrorResponse("Failed to load quote data", "")
		default:
			return fiber.StatusInternalServerError, ErrorResponse("Internal server error", "")
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return fiber.StatusNotFound, ErrorResponse("Route not found", "")
		case fiber.StatusMethodNotAllowed:
			return fiber.StatusMethodNotAllowed, ErrorResponse("Method not allowed", "")
		}
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, ErrorResponse("Internal server error", "")
		}
		return fiberErr.Code, ErrorResponse(fiberErr.Message, "")
	}

	return fiber.StatusInternalServerError, ErrorResponse("Internal server error", "")
}
