package ratelimit_test

import (
	"testing"

	"github.com/Behyna/safetycheck/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStorage_WithoutAddressUsesMemory(t *testing.T) {
	storage, err := ratelimit.NewStorage(ratelimit.Config{}, zap.NewNop())

	require.NoError(t, err)
	assert.Nil(t, storage)
}

func TestNewStorage_UnreachableRedis(t *testing.T) {
	storage, err := ratelimit.NewStorage(ratelimit.Config{Addr: "127.0.0.1:1"}, zap.NewNop())

	require.Error(t, err)
	assert.Nil(t, storage)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
