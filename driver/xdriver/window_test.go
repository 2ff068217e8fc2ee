package xdriver

import (
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowHandleEventNoKeyboard(t *testing.T) {
	win := &Window{logger: zerolog.Nop()}

	err0 := errors.New("bad window")
	out, err := win.HandleEvent(err0)
	assert.Nil(t, out)
	assert.Equal(t, err0, err)

	wc := &event.WindowClose{}
	out, err = win.HandleEvent(wc)
	assert.NoError(t, err)
	assert.Same(t, wc, out)

	out, err = win.HandleEvent(xproto.FocusInEvent{})
	assert.NoError(t, err)
	assert.Nil(t, out)

	// pointer mapping changes do not touch the keyboard
	out, err = win.HandleEvent(xproto.MappingNotifyEvent{Request: xproto.MappingPointer})
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestWindowEventLoop(t *testing.T) {
	win := &Window{
		logger: zerolog.Nop(),
		done:   make(chan struct{}),
		events: make(chan any, 1),
	}
	evs := []xgb.Event{xproto.FocusInEvent{}, nil}
	go win.eventLoop(func() (xgb.Event, xgb.Error) {
		ev := evs[0]
		evs = evs[1:]
		return ev, nil
	})

	assert.Equal(t, xproto.FocusInEvent{}, <-win.Events())
	assert.IsType(t, &event.WindowClose{}, <-win.Events())
}

func TestWindowEventLoopAfterClose(t *testing.T) {
	win := &Window{
		logger: zerolog.Nop(),
		done:   make(chan struct{}),
		events: make(chan any), // nobody reads
	}
	require.NoError(t, win.Close())
	require.NoError(t, win.Close())

	ended := make(chan struct{})
	go func() {
		defer close(ended)
		win.eventLoop(func() (xgb.Event, xgb.Error) {
			return xproto.FocusInEvent{}, nil
		})
	}()
	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop blocked after close")
	}

	ended = make(chan struct{})
	go func() {
		defer close(ended)
		win.eventLoop(func() (xgb.Event, xgb.Error) { return nil, nil })
	}()
	select {
	case <-ended:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop blocked on the close event")
	}
}
