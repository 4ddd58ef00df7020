package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/schema"
)

func TestRegisterAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)
	client.EXPECT().GetModel().Return("test-model")

	Register("test-register", func(_ context.Context, _ *schema.Configuration) (Client, error) {
		return client, nil
	})
	defer Unregister("test-register")

	factory, err := Get("test-register")
	require.NoError(t, err)

	created, err := factory(context.Background(), &schema.Configuration{})
	require.NoError(t, err)
	assert.Equal(t, "test-model", created.GetModel())
	assert.True(t, IsRegistered("test-register"))
}

func TestGet_UnknownProvider(t *testing.T) {
	factory, err := Get("does-not-exist")

	assert.Nil(t, factory)
	assert.ErrorIs(t, err, errUtils.ErrAIUnsupportedProvider)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestRegister_ReplacesExisting(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	Register("test-replace", func(_ context.Context, _ *schema.Configuration) (Client, error) {
		return nil, first
	})
	Register("test-replace", func(_ context.Context, _ *schema.Configuration) (Client, error) {
		return nil, second
	})
	defer Unregister("test-replace")

	factory, err := Get("test-replace")
	require.NoError(t, err)

	_, err = factory(context.Background(), &schema.Configuration{})
	assert.Same(t, second, err)
}

func TestList_Sorted(t *testing.T) {
	noop := func(_ context.Context, _ *schema.Configuration) (Client, error) { return nil, nil }
	Register("test-b", noop)
	Register("test-a", noop)
	defer Unregister("test-a")
	defer Unregister("test-b")

	names := List()
	indexA, indexB := -1, -1
	for i, name := range names {
		switch name {
		case "test-a":
			indexA = i
		case "test-b":
			indexB = i
		}
	}

	require.NotEqual(t, -1, indexA)
	require.NotEqual(t, -1, indexB)
	assert.Less(t, indexA, indexB)
}

func TestUnregister(t *testing.T) {
	Register("test-unregister", func(_ context.Context, _ *schema.Configuration) (Client, error) { return nil, nil })
	Unregister("test-unregister")

	assert.False(t, IsRegistered("test-unregister"))
}
