package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/safetycheck/internal/constants"
	errmiddleware "github.com/Behyna/safetycheck/internal/error"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "service not configured uses generic text",
			err:     service.NewServiceError(constants.ErrCodeServiceNotConfigured, service.ErrServiceNotConfigured),
			status:  fiber.StatusServiceUnavailable,
			code:    constants.ErrCodeServiceNotConfigured,
			message: constants.ErrMsgServiceNotConfigured,
		},
		{
			name:    "invalid contact exposes detail",
			err:     service.NewServiceError(constants.ErrCodeInvalidContact, errors.New(`contact "Dave": bad phone`)),
			status:  fiber.StatusBadRequest,
			code:    constants.ErrCodeInvalidContact,
			message: `contact "Dave": bad phone`,
		},
		{
			name:    "contacts required",
			err:     service.NewServiceError(constants.ErrCodeContactsRequired, service.ErrContactsRequired),
			status:  fiber.StatusBadRequest,
			code:    constants.ErrCodeContactsRequired,
			message: constants.ErrMsgContactsRequired,
		},
		{
			name:    "internal error hides cause",
			err:     service.NewServiceError(constants.ErrCodeInternalError, errors.New("template exploded")),
			status:  fiber.StatusInternalServerError,
			code:    constants.ErrCodeInternalError,
			message: constants.ErrMsgInternalError,
		},
		{
			name:    "unknown service code becomes internal",
			err:     service.NewServiceError("WHATEVER", errors.New("secret detail")),
			status:  fiber.StatusInternalServerError,
			code:    constants.ErrCodeInternalError,
			message: constants.ErrMsgInternalError,
		},
		{
			name:    "fiber rate limit error",
			err:     fiber.NewError(fiber.StatusTooManyRequests, constants.ErrMsgRateLimited),
			status:  fiber.StatusTooManyRequests,
			code:    constants.ErrCodeRateLimited,
			message: constants.ErrMsgRateLimited,
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  fiber.StatusInternalServerError,
			code:    constants.ErrCodeInternalError,
			message: constants.ErrMsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: errmiddleware.ErrorHandler(zap.NewNop())})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body errmiddleware.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errmiddleware.ErrorHandler(zap.NewNop())})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
