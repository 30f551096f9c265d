package mocks

import (
	"github.com/Behyna/safetycheck/internal/location"
	"github.com/stretchr/testify/mock"
)

type AlertComposer struct {
	mock.Mock
}

func (a *AlertComposer) Emergency(loc location.Result, input *location.Input) (string, error) {
	args := a.Called(loc, input)
	return args.String(0), args.Error(1)
}

func (a *AlertComposer) Test() (string, error) {
	args := a.Called()
	return args.String(0), args.Error(1)
}
