package mocks

import (
	"context"

	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type SMSProvider struct {
	mock.Mock
}

func (p *SMSProvider) Send(ctx context.Context, msg smsprovider.Message, creds smsprovider.Credentials) (
	smsprovider.Response, error) {
	args := p.Called(ctx, msg, creds)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
