// internal/system/env.go
package system

import (
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"

	"github.com/rs/zerolog"
)

// Env is the read-only context every system shares: tuning, geometry, static
// data, the event dispatcher and the logger.
type Env struct {
	Config  *config.Config
	World   config.World
	Library *defs.Library
	Events  *event.Dispatcher
	Log     zerolog.Logger
}

func (e *Env) emit(t event.EventType, data interface{}) {
	if e.Events == nil {
		return
	}
	e.Events.Dispatch(event.Event{Type: t, Data: data})
}

// status pushes a transient banner.
func (e *Env) status(msg string) {
	e.emit(event.Status, event.StatusData{Message: msg, Duration: config.StatusDefaultDuration})
}

// statusFor pushes a banner with a custom duration.
func (e *Env) statusFor(msg string, seconds float64) {
	e.emit(event.Status, event.StatusData{Message: msg, Duration: seconds})
}

// stickyStatus pushes a banner that stays until replaced.
func (e *Env) stickyStatus(msg string) {
	e.emit(event.Status, event.StatusData{Message: msg, Persistent: true})
}
