package smsprovider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Behyna/safetycheck/pkg/httpclient"
)

const (
	DefaultBaseURL = "https://rest.clicksend.com/v3"
	SendEndpoint   = "/sms/send"
)

type Provider interface {
	Send(ctx context.Context, msg Message, creds Credentials) (Response, error)
}

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Credentials `mapstructure:",squash"`
}

type ClickSend struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClickSend(cfg Config, client httpclient.HTTPClient) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &ClickSend{cfg: cfg, client: client}
}

func (c *ClickSend) Send(ctx context.Context, msg Message, creds Credentials) (Response, error) {
	var buf bytes.Buffer
	request := sendRequest{Messages: []messageRequest{{To: msg.To, Body: msg.Body, Source: msg.Source}}}
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return Response{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": basicAuth(creds),
	}

	resp, err := c.client.Post(ctx, c.cfg.BaseURL+SendEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, ErrTimeout
		}

		return Response{}, NewError(ErrorCodeNetworkError, err.Error())
	}

	defer resp.Body.Close()

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return Response{}, NewError(ErrorCodeServerError, fmt.Sprintf("provider returned HTTP %d", resp.StatusCode))
		}

		return Response{}, NewError(ErrorCodeInvalidResponse, fmt.Sprintf("decoding error: %v", err))
	}

	if resp.StatusCode != http.StatusOK || body.HTTPCode != http.StatusOK {
		code := ErrorCodeRejected
		if resp.StatusCode >= http.StatusInternalServerError {
			code = ErrorCodeServerError
		}

		return Response{}, NewError(code, body.ResponseMsg)
	}

	if len(body.Data.Messages) == 0 {
		return Response{}, NewError(ErrorCodeInvalidResponse, "provider response contained no messages")
	}

	message := body.Data.Messages[0]
	if message.Status != "" && message.Status != messageStatusSuccess {
		return Response{}, NewError(ErrorCodeRejected, message.Status)
	}

	return Response{
		MessageID: message.MessageID,
		Cost:      float64(message.MessagePrice),
		Status:    message.Status,
	}, nil
}

func basicAuth(creds Credentials) string {
	token := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.APIKey))
	return "Basic " + token
}
