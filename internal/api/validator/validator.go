package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Behyna/safetycheck/internal/constants"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	sep = " and "
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	ParseAndValidate(c *fiber.Ctx, data any, endpoint string) error
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validate *validator.Validate, metrics *metrics.Metrics) IXValidator {
	for key, function := range valid {
		_ = validate.RegisterValidation(key, function)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &XValidator{
		validator: validate,
		metrics:   metrics,
	}
}

// ParseAndValidate decodes the request body into data (a pointer) and runs the
// struct's validate tags. Failures come back as service errors so the fiber
// ErrorHandler renders them like any other rejection.
func (x XValidator) ParseAndValidate(c *fiber.Ctx, data any, endpoint string) error {
	start := time.Now()

	if err := c.BodyParser(data); err != nil {
		return service.NewServiceError(constants.ErrCodeInvalidRequestBody,
			fmt.Errorf("%s: %w", constants.ErrMsgInvalidRequestBody, err))
	}

	if errs := x.Validate(data); len(errs) > 0 {
		errMsgs := make([]string, 0, len(errs))
		for _, err := range errs {
			errMsgs = append(errMsgs, describe(err))

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.FailedField, err.Tag)
			}
		}

		if x.metrics != nil {
			x.metrics.RecordValidationDuration(endpoint, time.Since(start))
		}

		return service.NewServiceError(constants.ErrCodeValidationFailed, errors.New(strings.Join(errMsgs, sep)))
	}

	if x.metrics != nil {
		x.metrics.RecordValidationDuration(endpoint, time.Since(start))
	}

	return nil
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(errs, &fieldErrs) {
			return []Error{{FailedField: "body", Tag: "invalid"}}
		}

		for _, err := range fieldErrs {
			validationErrors = append(validationErrors, Error{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}
	return validationErrors
}

func describe(err Error) string {
	switch err.Tag {
	case "required":
		return fmt.Sprintf("%s is required", err.FailedField)
	case IntlPhoneTag:
		return fmt.Sprintf("%s must include country code (e.g., +1234567890)", err.FailedField)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", err.FailedField, err.Tag)
	}
}
