package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/schema"
)

// Client is the completion client every provider implements.
//
//go:generate go run go.uber.org/mock/mockgen@latest -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type Client interface {
	// SendMessageWithHistory sends the full conversation and returns the generated text.
	SendMessageWithHistory(ctx context.Context, messages []types.Message) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetMaxTokens returns the configured max tokens.
	GetMaxTokens() int
}

// ClientFactory creates a provider client from configuration.
type ClientFactory func(ctx context.Context, config *schema.Configuration) (Client, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]ClientFactory)
)

// Register registers a provider factory under name. Registering the same name
// twice replaces the previous factory.
func Register(name string, factory ClientFactory) {
	mu.Lock()
	defer mu.Unlock()

	factories[name] = factory
}

// Unregister removes a provider. Used by tests.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, name)
}

// Get returns the factory registered under name.
func Get(name string) (ClientFactory, error) {
	mu.RLock()
	defer mu.RUnlock()

	factory, ok := factories[name]
	if !ok {
		return nil, errUtils.Build(errUtils.ErrAIUnsupportedProvider).
			WithCause(fmt.Errorf("%q", name)).
			WithHintf("Supported providers: %v", listLocked()).
			WithContext("provider", name).
			Err()
	}
	return factory, nil
}

// IsRegistered reports whether a provider is registered under name.
func IsRegistered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// List returns the sorted names of all registered providers.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
