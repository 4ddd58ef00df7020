package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/registry"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

func registerMock(t *testing.T, name string, client registry.Client) {
	t.Helper()

	registry.Register(name, func(_ context.Context, _ *schema.Configuration) (registry.Client, error) {
		return client, nil
	})
	t.Cleanup(func() { registry.Unregister(name) })
}

func TestNewClient_NoProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &schema.Configuration{}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrAIProviderNotSet)
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &schema.Configuration{}, "does-not-exist")

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrAIUnsupportedProvider)
}

func TestNewClient_FallsBackToDefaultProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := registry.NewMockClient(ctrl)
	mock.EXPECT().GetModel().Return("test-model").AnyTimes()
	mock.EXPECT().GetMaxTokens().Return(512).AnyTimes()
	registerMock(t, "fallback-test", mock)

	config := &schema.Configuration{}
	config.Settings.AI.DefaultProvider = "fallback-test"

	client, err := NewClient(context.Background(), config, "")

	require.NoError(t, err)
	assert.Same(t, mock, client)
}

func TestNewClient_FactoryError(t *testing.T) {
	factoryErr := errors.New("missing key")
	registry.Register("failing-test", func(_ context.Context, _ *schema.Configuration) (registry.Client, error) {
		return nil, factoryErr
	})
	t.Cleanup(func() { registry.Unregister("failing-test") })

	_, err := NewClient(context.Background(), &schema.Configuration{}, "failing-test")

	assert.ErrorIs(t, err, factoryErr)
}

func TestNewClient_WrapsWithTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := registry.NewMockClient(ctrl)
	mock.EXPECT().GetModel().Return("test-model").AnyTimes()
	mock.EXPECT().GetMaxTokens().Return(512).AnyTimes()
	registerMock(t, "timeout-test", mock)

	config := &schema.Configuration{}
	config.Settings.AI.TimeoutSeconds = 30

	client, err := NewClient(context.Background(), config, "timeout-test")

	require.NoError(t, err)
	assert.IsType(t, &timeoutClient{}, client)
	assert.Equal(t, "test-model", client.GetModel())
}

func TestWithTimeout_SetsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := registry.NewMockClient(ctrl)
	mock.EXPECT().
		SendMessageWithHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []types.Message) (string, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return "ok", nil
		})

	client := WithTimeout(mock, time.Minute)
	got, err := client.SendMessageWithHistory(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
