package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/internal/mocks"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProvider_Send(t *testing.T) {
	msg := smsprovider.Message{To: "+61411111111", Body: "help", Source: "SafetyCheck-Emergency"}

	newProviderService := func(provider smsprovider.Provider, timeout time.Duration) (service.ProviderService, *metrics.Metrics) {
		m := metrics.NewMetrics(prometheus.NewRegistry())
		cfg := &config.Config{Dispatch: config.Dispatch{SendTimeout: timeout}}
		return service.NewProviderService(provider, zap.NewNop(), cfg, m), m
	}

	t.Run("successful send is bounded by the send timeout", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}
		svc, m := newProviderService(mockProvider, time.Second)

		mockProvider.On("Send", mock.Anything, msg, creds).
			Run(func(args mock.Arguments) {
				_, hasDeadline := args.Get(0).(context.Context).Deadline()
				assert.True(t, hasDeadline)
			}).
			Return(sent("m-1", 0.077), nil)

		response, err := svc.Send(context.Background(), msg, creds)

		require.NoError(t, err)
		assert.Equal(t, "m-1", response.MessageID)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SendsTotal.WithLabelValues("SafetyCheck-Emergency", "success")))
		mockProvider.AssertExpectations(t)
	})

	t.Run("provider error is returned unchanged without retry", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}
		svc, m := newProviderService(mockProvider, time.Second)

		providerErr := smsprovider.NewError(smsprovider.ErrorCodeServerError, "provider returned HTTP 503")
		mockProvider.On("Send", mock.Anything, msg, creds).Return(smsprovider.Response{}, providerErr)

		_, err := svc.Send(context.Background(), msg, creds)

		assert.Equal(t, providerErr, err)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SendsTotal.WithLabelValues("SafetyCheck-Emergency", "failed")))
	})

	t.Run("provider ignoring cancellation still times out", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}
		svc, _ := newProviderService(mockProvider, 20*time.Millisecond)

		mockProvider.On("Send", mock.Anything, msg, creds).
			After(500*time.Millisecond).
			Return(sent("late", 0), nil)

		start := time.Now()
		_, err := svc.Send(context.Background(), msg, creds)

		assert.True(t, errors.Is(err, smsprovider.ErrTimeout))
		assert.Equal(t, "send timed out", err.Error())
		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})

	t.Run("panicking provider is reported as an unknown error", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}
		svc, m := newProviderService(mockProvider, time.Second)

		mockProvider.On("Send", mock.Anything, msg, creds).
			Run(func(mock.Arguments) { panic("transport exploded") }).
			Return(smsprovider.Response{}, nil)

		var err error
		assert.NotPanics(t, func() {
			_, err = svc.Send(context.Background(), msg, creds)
		})

		require.Error(t, err)
		assert.Equal(t, smsprovider.UnknownErrorMessage, err.Error())
		assert.True(t, errors.Is(err, &smsprovider.Error{Code: smsprovider.ErrorCodeUnknown}))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.SendsTotal.WithLabelValues("SafetyCheck-Emergency", "failed")))
	})

	t.Run("zero timeout falls back to default", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}
		svc, _ := newProviderService(mockProvider, 0)

		mockProvider.On("Send", mock.Anything, msg, creds).
			Run(func(args mock.Arguments) {
				deadline, ok := args.Get(0).(context.Context).Deadline()
				assert.True(t, ok)
				assert.Greater(t, time.Until(deadline), 5*time.Second)
			}).
			Return(sent("m-2", 0), nil)

		_, err := svc.Send(context.Background(), msg, creds)
		require.NoError(t, err)
	})
}
