package service

import (
	"context"
	"strings"
	"time"

	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"go.uber.org/zap"
)

const defaultSendTimeout = 10 * time.Second

type ProviderService interface {
	Send(ctx context.Context, msg smsprovider.Message, creds smsprovider.Credentials) (smsprovider.Response, error)
}

type Provider struct {
	provider smsprovider.Provider
	logger   *zap.Logger
	metrics  *metrics.Metrics
	timeout  time.Duration
}

func NewProviderService(provider smsprovider.Provider, logger *zap.Logger, config *config.Config,
	metrics *metrics.Metrics) ProviderService {
	timeout := config.Dispatch.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Provider{provider: provider, logger: logger, metrics: metrics, timeout: timeout}
}

type sendOutcome struct {
	response smsprovider.Response
	err      error
}

// Send makes exactly one provider call. It returns smsprovider.ErrTimeout
// once the send timeout or ctx expires, even if the provider itself ignores
// cancellation. A panicking provider is reported as an unknown send error.
func (p *Provider) Send(ctx context.Context, msg smsprovider.Message, creds smsprovider.Credentials) (
	smsprovider.Response, error) {
	start := time.Now()

	providerCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	done := make(chan sendOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("SMS provider panicked",
					zap.Any("panic", r),
					zap.String("to", maskPhone(msg.To)),
					zap.String("source", msg.Source))
				done <- sendOutcome{err: smsprovider.NewError(smsprovider.ErrorCodeUnknown, "")}
			}
		}()

		response, err := p.provider.Send(providerCtx, msg, creds)
		done <- sendOutcome{response: response, err: err}
	}()

	var outcome sendOutcome
	select {
	case outcome = <-done:
	case <-providerCtx.Done():
		outcome.err = smsprovider.ErrTimeout
	}

	duration := time.Since(start)

	if outcome.err != nil {
		p.metrics.RecordSend(msg.Source, "failed", duration)
		p.logger.Warn("SMS send failed",
			zap.Error(outcome.err),
			zap.String("to", maskPhone(msg.To)),
			zap.String("source", msg.Source),
			zap.Duration("duration", duration))
		return smsprovider.Response{}, outcome.err
	}

	p.metrics.RecordSend(msg.Source, "success", duration)
	p.logger.Debug("SMS sent",
		zap.String("messageId", outcome.response.MessageID),
		zap.String("to", maskPhone(msg.To)),
		zap.String("source", msg.Source),
		zap.Duration("duration", duration))

	return outcome.response, nil
}

// maskPhone keeps the country prefix and the last three digits.
func maskPhone(phone string) string {
	if len(phone) <= 7 {
		return strings.Repeat("*", len(phone))
	}
	return phone[:4] + strings.Repeat("*", len(phone)-7) + phone[len(phone)-3:]
}
