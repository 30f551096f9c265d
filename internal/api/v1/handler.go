package v1

import (
	"fmt"

	"github.com/Behyna/safetycheck/internal/api/validator"
	"github.com/Behyna/safetycheck/internal/constants"
	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	service   service.EmergencyService
	validator validator.IXValidator
}

func NewHandler(logger *zap.Logger, service service.EmergencyService, validator validator.IXValidator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

func (h *Handler) TestSMS(c *fiber.Ctx) error {
	var request TestSMSRequest
	if err := h.validator.ParseAndValidate(c, &request, "sms_test"); err != nil {
		h.logger.Warn("Rejected test SMS request", zap.Error(err))
		return err
	}

	cmd := service.TestMessageCommand{
		Contact:     model.Contact{Name: request.ContactName, Phone: request.PhoneNumber},
		Credentials: smsprovider.Credentials{Username: request.Username, APIKey: request.APIKey},
	}

	result, err := h.service.SendTest(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(TestSMSResponse{Success: true, Data: result})
}

// Emergency only decodes the body. Contact and credential checks belong to
// the dispatcher so they run in one place and in a fixed order.
func (h *Handler) Emergency(c *fiber.Ctx) error {
	var request EmergencyRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse emergency request body", zap.Error(err))
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody,
			fmt.Errorf("%s: %w", constants.ErrMsgInvalidRequestBody, err))
	}

	cmd := service.DispatchCommand{
		Contacts:    request.ContactList(),
		Location:    request.Location,
		Credentials: smsprovider.Credentials{Username: request.Username, APIKey: request.APIKey},
	}

	summary, err := h.service.Dispatch(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(NewEmergencyResponse(summary))
}
