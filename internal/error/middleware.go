package middleware

import (
	"errors"

	"github.com/Behyna/safetycheck/internal/constants"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return handleFiberError(c, fiberErr)
		}

		logger.Error("Unhandled request error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Code:  constants.ErrCodeInternalError,
			Error: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	message := constants.GetErrorMessage(errorCode)
	if constants.HasDetail(errorCode) {
		message = err.Error()
	}

	return c.Status(status).JSON(Response{Code: errorCode, Error: message})
}

func handleFiberError(c *fiber.Ctx, err *fiber.Error) error {
	var errorCode string
	switch err.Code {
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		errorCode = constants.ErrCodeNotFound
	case fiber.StatusTooManyRequests:
		errorCode = constants.ErrCodeRateLimited
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		errorCode = constants.ErrCodeInvalidRequestBody
	default:
		errorCode = constants.ErrCodeInternalError
	}

	message := err.Message
	if errorCode == constants.ErrCodeInternalError {
		message = constants.GetErrorMessage(errorCode)
	}

	return c.Status(err.Code).JSON(Response{Code: errorCode, Error: message})
}
