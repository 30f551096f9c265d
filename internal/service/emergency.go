package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/constants"
	"github.com/Behyna/safetycheck/internal/location"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrency  = 5
	defaultEmergencySource = "SafetyCheck-Emergency"
	defaultTestSource      = "SafetyCheck-Test"
)

var placeholderCredentials = []string{
	"your_username",
	"your_api_key",
	"YOUR_CLICKSEND_USERNAME",
	"YOUR_CLICKSEND_API_KEY",
	"changeme",
}

type AlertComposer interface {
	Emergency(loc location.Result, input *location.Input) (string, error)
	Test() (string, error)
}

type EmergencyService interface {
	Dispatch(ctx context.Context, cmd DispatchCommand) (model.DispatchSummary, error)
	SendTest(ctx context.Context, cmd TestMessageCommand) (model.DispatchResult, error)
}

type emergency struct {
	provider    ProviderService
	composer    AlertComposer
	logger      *zap.Logger
	metrics     *metrics.Metrics
	config      config.Dispatch
	credentials smsprovider.Credentials
}

func NewEmergencyService(provider ProviderService, composer AlertComposer, logger *zap.Logger,
	config *config.Config, metrics *metrics.Metrics) EmergencyService {
	dispatch := config.Dispatch
	if dispatch.MaxConcurrency <= 0 {
		dispatch.MaxConcurrency = defaultMaxConcurrency
	}
	if dispatch.EmergencySource == "" {
		dispatch.EmergencySource = defaultEmergencySource
	}
	if dispatch.TestSource == "" {
		dispatch.TestSource = defaultTestSource
	}

	return &emergency{
		provider:    provider,
		composer:    composer,
		logger:      logger,
		metrics:     metrics,
		config:      dispatch,
		credentials: config.Provider.Credentials,
	}
}

// Dispatch alerts every contact with the same body. Rejections happen before
// any send; once sending starts every contact ends up in the summary, in the
// order given, whether or not its send succeeded.
func (e *emergency) Dispatch(ctx context.Context, cmd DispatchCommand) (model.DispatchSummary, error) {
	creds, err := e.resolveCredentials(cmd.Credentials)
	if err != nil {
		e.reject(err)
		return model.DispatchSummary{}, err
	}

	if err := validateContacts(cmd.Contacts); err != nil {
		e.reject(err)
		return model.DispatchSummary{}, err
	}

	dispatchID := uuid.NewString()
	start := time.Now()

	loc := location.Validate(cmd.Location)
	e.metrics.RecordLocation(loc.Valid)

	body, err := e.composeEmergency(loc, cmd.Location)
	if err != nil {
		e.logger.Error("Failed to compose emergency alert",
			zap.String("dispatchID", dispatchID),
			zap.Error(err))
		serviceErr := NewServiceError(constants.ErrCodeInternalError, fmt.Errorf("%w: %v", ErrCompose, err))
		e.reject(serviceErr)
		return model.DispatchSummary{}, serviceErr
	}

	e.logger.Info("Dispatching emergency alert",
		zap.String("dispatchID", dispatchID),
		zap.Int("contacts", len(cmd.Contacts)),
		zap.Bool("locationAvailable", loc.Valid),
		zap.String("locationReason", loc.Reason))

	results := e.fanOut(ctx, dispatchID, cmd.Contacts, body, creds)
	summary := model.NewDispatchSummary(dispatchID, results, loc.Valid, loc.Reason)

	duration := time.Since(start)
	e.metrics.RecordDispatch(summary.Total, summary.Sent, duration)

	fields := []zap.Field{
		zap.String("dispatchID", dispatchID),
		zap.Int("total", summary.Total),
		zap.Int("sent", summary.Sent),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", duration),
	}
	if summary.Success() {
		e.logger.Info("Emergency dispatch completed", fields...)
	} else {
		e.logger.Error("Emergency dispatch reached no contacts", fields...)
	}

	return summary, nil
}

func (e *emergency) SendTest(ctx context.Context, cmd TestMessageCommand) (model.DispatchResult, error) {
	creds, err := e.resolveCredentials(cmd.Credentials)
	if err != nil {
		return model.DispatchResult{}, err
	}

	if err := validateContacts([]model.Contact{cmd.Contact}); err != nil {
		return model.DispatchResult{}, err
	}

	body, err := e.composer.Test()
	if err != nil {
		e.logger.Error("Failed to compose test message", zap.Error(err))
		return model.DispatchResult{}, NewServiceError(constants.ErrCodeInternalError, fmt.Errorf("%w: %v", ErrCompose, err))
	}

	msg := smsprovider.Message{To: cmd.Contact.Phone, Body: body, Source: e.config.TestSource}
	response, err := e.provider.Send(context.WithoutCancel(ctx), msg, creds)
	if err != nil {
		e.logger.Warn("Test SMS failed",
			zap.String("contact", cmd.Contact.Name),
			zap.String("phone", maskPhone(cmd.Contact.Phone)),
			zap.Error(err))
		return model.DispatchResult{}, NewServiceError(constants.ErrCodeProviderFailed, err)
	}

	e.logger.Info("Test SMS sent",
		zap.String("contact", cmd.Contact.Name),
		zap.String("messageId", response.MessageID))

	return successResult(cmd.Contact, response), nil
}

// fanOut detaches from the caller's cancellation so a dropped client
// connection cannot leave contacts unattempted. Only the configured
// dispatch deadline cuts it short.
func (e *emergency) fanOut(ctx context.Context, dispatchID string, contacts []model.Contact, body string,
	creds smsprovider.Credentials) []model.DispatchResult {
	ctx = context.WithoutCancel(ctx)
	if e.config.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Deadline)
		defer cancel()
	}

	results := make([]model.DispatchResult, len(contacts))

	var g errgroup.Group
	g.SetLimit(e.config.MaxConcurrency)

	for i, contact := range contacts {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("Panic while sending emergency SMS",
						zap.String("dispatchID", dispatchID),
						zap.Int("contactIndex", i),
						zap.Any("panic", r))
					results[i] = failedResult(contact, smsprovider.UnknownErrorMessage)
				}
			}()

			results[i] = e.sendToContact(ctx, dispatchID, contact, body, creds)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (e *emergency) sendToContact(ctx context.Context, dispatchID string, contact model.Contact, body string,
	creds smsprovider.Credentials) model.DispatchResult {
	if ctx.Err() != nil {
		e.logger.Warn("Emergency SMS skipped after dispatch deadline",
			zap.String("dispatchID", dispatchID),
			zap.String("contact", contact.Name))
		return failedResult(contact, ErrMsgDispatchDeadline)
	}

	msg := smsprovider.Message{To: contact.Phone, Body: body, Source: e.config.EmergencySource}

	response, err := e.provider.Send(ctx, msg, creds)
	if err != nil {
		reason := err.Error()
		if ctx.Err() != nil {
			reason = ErrMsgDispatchDeadline
		}

		e.logger.Warn("Emergency SMS failed",
			zap.String("dispatchID", dispatchID),
			zap.String("contact", contact.Name),
			zap.String("phone", maskPhone(contact.Phone)),
			zap.String("reason", reason))
		return failedResult(contact, reason)
	}

	e.logger.Info("Emergency SMS sent",
		zap.String("dispatchID", dispatchID),
		zap.String("contact", contact.Name),
		zap.String("phone", maskPhone(contact.Phone)),
		zap.String("messageId", response.MessageID))

	return successResult(contact, response)
}

func (e *emergency) composeEmergency(loc location.Result, input *location.Input) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return e.composer.Emergency(loc, input)
}

func (e *emergency) resolveCredentials(override smsprovider.Credentials) (smsprovider.Credentials, error) {
	creds := e.credentials
	if override.Username != "" && override.APIKey != "" {
		creds = override
	}

	if isPlaceholder(creds.Username) || isPlaceholder(creds.APIKey) {
		e.logger.Error("SMS provider credentials missing or placeholder")
		return smsprovider.Credentials{}, NewServiceError(constants.ErrCodeServiceNotConfigured, ErrServiceNotConfigured)
	}

	return creds, nil
}

func (e *emergency) reject(err error) {
	code := constants.ErrCodeInternalError
	var serviceErr Error
	if errors.As(err, &serviceErr) {
		code = serviceErr.Code
	}
	e.metrics.RecordDispatchRejected(code)
	e.logger.Warn("Emergency dispatch rejected", zap.String("code", code), zap.Error(err))
}

func validateContacts(contacts []model.Contact) error {
	if len(contacts) == 0 {
		return NewServiceError(constants.ErrCodeContactsRequired, ErrContactsRequired)
	}

	for i, contact := range contacts {
		if strings.TrimSpace(contact.Name) == "" {
			return NewServiceError(constants.ErrCodeInvalidContact,
				fmt.Errorf("contact #%d: %w", i+1, ErrContactNameRequired))
		}
		if !strings.HasPrefix(contact.Phone, "+") {
			return NewServiceError(constants.ErrCodeInvalidContact,
				fmt.Errorf("contact %q: %w", contact.Name, ErrInvalidContact))
		}
	}

	return nil
}

func isPlaceholder(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}

	for _, placeholder := range placeholderCredentials {
		if strings.EqualFold(value, placeholder) {
			return true
		}
	}

	return false
}

func successResult(contact model.Contact, response smsprovider.Response) model.DispatchResult {
	cost := response.Cost
	return model.DispatchResult{
		Contact:   contact.Name,
		Phone:     contact.Phone,
		Status:    model.DispatchStatusSuccess,
		MessageID: response.MessageID,
		Cost:      &cost,
	}
}

func failedResult(contact model.Contact, reason string) model.DispatchResult {
	if reason == "" {
		reason = smsprovider.UnknownErrorMessage
	}
	return model.DispatchResult{
		Contact: contact.Name,
		Phone:   contact.Phone,
		Status:  model.DispatchStatusFailed,
		Error:   reason,
	}
}
