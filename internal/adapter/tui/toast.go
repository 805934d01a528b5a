package tui

import (
	"time"

	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// toastLifetime is how long a toast stays on screen.
const toastLifetime = 3 * time.Second

type toast struct {
	level   ports.Level
	message string
	expires time.Time
}

// ToastCenter collects user-visible outcome signals from the core and
// holds them until they expire. It implements ports.Notifier; Notify is
// only ever called from inside session operations, which run on the
// program's update loop, so no locking is needed.
type ToastCenter struct {
	now    func() time.Time
	toasts []toast
}

func NewToastCenter() *ToastCenter {
	return &ToastCenter{now: time.Now}
}

// Notify implements ports.Notifier.
func (c *ToastCenter) Notify(level ports.Level, message string) {
	c.toasts = append(c.toasts, toast{
		level:   level,
		message: message,
		expires: c.now().Add(toastLifetime),
	})
}

// Expire drops toasts whose lifetime has passed and reports whether any
// remain (callers keep ticking while toasts are visible).
func (c *ToastCenter) Expire() bool {
	now := c.now()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.expires.After(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
	return len(c.toasts) > 0
}

// Active returns the toasts currently on screen, oldest first.
func (c *ToastCenter) Active() []toast {
	return c.toasts
}
