package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/safetycheck/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEchoServer() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-User-Agent", r.Header.Get("User-Agent"))
		w.Header().Set("X-Auth", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
	handler.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(handler)
}

func TestHttpClient_Do(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(httpclient.Config{Timeout: 5 * time.Second})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/echo", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodGet, resp.Header.Get("X-Method"))
	assert.Equal(t, "safetycheck/1.0", resp.Header.Get("X-User-Agent"))
}

func TestHttpClient_Post(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(httpclient.Config{Timeout: 5 * time.Second, UserAgent: "alertctl"})
	headers := map[string]string{"Authorization": "Basic abc"}

	resp, err := client.Post(context.Background(), server.URL+"/echo", strings.NewReader(`{"to":"+1"}`), headers)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"to":"+1"}`, string(body))
	assert.Equal(t, http.MethodPost, resp.Header.Get("X-Method"))
	assert.Equal(t, "alertctl", resp.Header.Get("X-User-Agent"))
	assert.Equal(t, "Basic abc", resp.Header.Get("X-Auth"))
}

func TestHttpClient_ContextDeadline(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(httpclient.Config{Timeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Post(ctx, server.URL+"/slow", strings.NewReader("{}"), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
