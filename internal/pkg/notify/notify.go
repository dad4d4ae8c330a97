// Package notify delivers user-facing toast notifications.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/weddingsite/internal/pkg/logger"
)

// Variant is the visual style of a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Toast is one notification shown to the guest.
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Variant     Variant `json:"variant"`
}

// Notifier receives toasts.
type Notifier interface {
	Notify(toast Toast)
}

// LogNotifier writes toasts to the log; destructive ones at warn level.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier on the "notify" component logger.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: logger.Component("notify")}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(toast Toast) {
	event := n.logger.Info()
	if toast.Variant == VariantDestructive {
		event = n.logger.Warn()
	}
	event.Str("variant", string(toast.Variant)).Str("description", toast.Description).Msg(toast.Title)
}

// Queue buffers toasts until the view layer drains them, optionally forwarding
// each one to another Notifier as well.
type Queue struct {
	mu      sync.Mutex
	pending []Toast
	next    Notifier
}

// NewQueue creates a Queue; next may be nil.
func NewQueue(next Notifier) *Queue {
	return &Queue{next: next}
}

// Notify implements Notifier.
func (q *Queue) Notify(toast Toast) {
	q.mu.Lock()
	q.pending = append(q.pending, toast)
	q.mu.Unlock()

	if q.next != nil {
		q.next.Notify(toast)
	}
}

// Drain returns and clears the pending toasts in arrival order.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	return out
}
