package litellm

import (
	"context"

	"github.com/cloudposse/fngen/pkg/ai/registry"
	"github.com/cloudposse/fngen/pkg/schema"
)

func init() {
	registry.Register(ProviderName, func(_ context.Context, config *schema.Configuration) (registry.Client, error) {
		return NewClient(config)
	})
}
