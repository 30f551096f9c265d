package mocks

import (
	"context"

	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/stretchr/testify/mock"
)

type EmergencyService struct {
	mock.Mock
}

func (e *EmergencyService) Dispatch(ctx context.Context, cmd service.DispatchCommand) (model.DispatchSummary, error) {
	args := e.Called(ctx, cmd)
	return args.Get(0).(model.DispatchSummary), args.Error(1)
}

func (e *EmergencyService) SendTest(ctx context.Context, cmd service.TestMessageCommand) (model.DispatchResult, error) {
	args := e.Called(ctx, cmd)
	return args.Get(0).(model.DispatchResult), args.Error(1)
}
