package mocks

import (
	"context"

	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) Send(ctx context.Context, msg smsprovider.Message, creds smsprovider.Credentials) (
	smsprovider.Response, error) {
	args := p.Called(ctx, msg, creds)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
