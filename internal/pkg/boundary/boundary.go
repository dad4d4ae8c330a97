// Package boundary supervises a render step, swapping to a fallback view when
// the step fails or panics until the caller explicitly resets it.
package boundary

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/weddingsite/internal/pkg/logger"
)

// RenderFunc produces a view.
type RenderFunc[V any] func() (V, error)

// FallbackFunc produces the view shown after a render failure.
type FallbackFunc[V any] func(err error) V

// PanicError is the error recorded when a render panics.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("render panicked: %v", e.Value)
}

// Boundary wraps a render step. Once a render fails the boundary keeps
// returning the fallback view, without calling render again, until Reset or
// Reload is called.
type Boundary[V any] struct {
	name     string
	render   RenderFunc[V]
	fallback FallbackFunc[V]
	onReload func()

	mu     sync.Mutex
	err    error
	logger zerolog.Logger
}

// Option configures a Boundary.
type Option[V any] func(*Boundary[V])

// WithReload sets the hook Reload runs before rendering again, e.g. dropping
// cached state the failed render depended on.
func WithReload[V any](hook func()) Option[V] {
	return func(b *Boundary[V]) {
		b.onReload = hook
	}
}

// New creates a Boundary named name.
func New[V any](name string, render RenderFunc[V], fallback FallbackFunc[V], opts ...Option[V]) *Boundary[V] {
	b := &Boundary[V]{
		name:     name,
		render:   render,
		fallback: fallback,
		logger:   logger.Component("boundary").With().Str("boundary", name).Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render returns the rendered view, or the fallback view and false when the
// boundary has caught a failure.
func (b *Boundary[V]) Render() (V, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return b.fallback(b.err), false
	}

	view, err := b.safeRender()
	if err != nil {
		b.err = err
		b.logger.Error().Err(err).Msg("Render failed, showing fallback")
		return b.fallback(err), false
	}
	return view, true
}

// Err returns the caught failure, or nil while the boundary is healthy.
func (b *Boundary[V]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Reset clears the caught failure and renders again.
func (b *Boundary[V]) Reset() (V, bool) {
	b.mu.Lock()
	b.err = nil
	b.mu.Unlock()

	b.logger.Info().Msg("Boundary reset")
	return b.Render()
}

// Reload runs the reload hook, clears the caught failure and renders again.
func (b *Boundary[V]) Reload() (V, bool) {
	if b.onReload != nil {
		b.onReload()
	}
	return b.Reset()
}

func (b *Boundary[V]) safeRender() (view V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return b.render()
}
