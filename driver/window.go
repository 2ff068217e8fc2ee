// Package driver picks the window implementation of the platform.
package driver

import (
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput"
	"github.com/rs/zerolog"
)

// Window delivers connection events on Events, to be run through
// HandleEvent by a single goroutine.
type Window interface {
	Events() <-chan any
	// Returns a *event.KeyEvent, a *event.WindowClose, or nil.
	HandleEvent(ev any) (any, error)
	Keyboard() *xinput.Keyboard
	Close() error
}

type Options struct {
	Display  string
	Name     string
	Keyboard xinput.Options
	Logger   zerolog.Logger
}
