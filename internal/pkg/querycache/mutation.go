package querycache

import (
	"context"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/notify"
)

const defaultErrorTitle = "Something went wrong"

// Mutation describes a side-effecting call and what it does to the cache on success.
type Mutation[T any] struct {
	// Name identifies the mutation in logs.
	Name string
	Run  func(ctx context.Context) (T, error)
	// Invalidates lists key prefixes marked stale after Run succeeds.
	Invalidates []Key
	// Patch applies an in-place update to cached values after Run succeeds.
	Patch func(c *Cache, result T)
	// SuccessMessage, when set, is shown as a success toast.
	SuccessMessage string
	// ErrorTitle heads the failure toast.
	ErrorTitle string
}

// Mutate runs m once (mutations are never retried). On failure the error is
// turned into a toast and returned; on success Patch runs before Invalidates.
func Mutate[T any](ctx context.Context, c *Cache, m Mutation[T]) (T, error) {
	result, err := m.Run(ctx)
	if err != nil {
		title := m.ErrorTitle
		if title == "" {
			title = defaultErrorTitle
		}
		friendly := apperrors.FriendlyMessage(title, err)
		c.logger.Warn().Err(err).Str("mutation", m.Name).Msg("Mutation failed")
		c.notify(notify.Toast{Title: friendly.Title, Description: friendly.Description, Variant: notify.VariantDestructive})
		return result, err
	}

	if m.Patch != nil {
		m.Patch(c, result)
	}
	if len(m.Invalidates) > 0 {
		c.Invalidate(m.Invalidates...)
	}
	if m.SuccessMessage != "" {
		c.notify(notify.Toast{Title: m.SuccessMessage, Variant: notify.VariantSuccess})
	}

	c.logger.Debug().Str("mutation", m.Name).Msg("Mutation succeeded")
	return result, nil
}

func (c *Cache) notify(toast notify.Toast) {
	if c.notifier != nil {
		c.notifier.Notify(toast)
	}
}
