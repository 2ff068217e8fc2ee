package xdriver

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/wmprotocols"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xutil"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	Display  string // empty: $DISPLAY
	Name     string
	Keyboard xinput.Options
	Logger   zerolog.Logger
}

// Window is a small input window. Its event loop only reads from the
// connection; the keyboard is driven by whoever calls HandleEvent.
type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	Wmp    *wmprotocols.WMP

	kbd    *xinput.Keyboard
	logger zerolog.Logger

	closeOnce sync.Once
	done      chan struct{}
	events    chan any
}

func NewWindow(opt *Options) (*Window, error) {
	if opt == nil {
		opt = &Options{Logger: zerolog.Nop()}
	}

	display := opt.Display
	if display == "" && runtime.GOOS == "windows" {
		display = os.Getenv("DISPLAY")
		if display == "" {
			display = "127.0.0.1:0.0"
		}
	}

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		logger: opt.Logger,
		done:   make(chan struct{}),
		events: make(chan any, 8),
	}

	if err := win.initialize(opt); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop(conn.WaitForEvent)

	return win, nil
}

func (win *Window) initialize(opt *Options) error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		xproto.EventMaskFocusChange |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.BlackPixel, evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 320, 120,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	if err := xutil.LoadAtoms(win.Conn, &Atoms, false); err != nil {
		return err
	}

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	srv, err := xinput.NewConnServer(win.Conn)
	if err != nil {
		return err
	}
	kopt := opt.Keyboard
	kopt.Logger = opt.Logger
	kbd, fe, err := xinput.NewKeyboard(srv, &kopt)
	if err != nil {
		return err
	}
	win.kbd = kbd
	win.logger.Debug().Uint8("firstEvent", fe).Msg("xkb events")

	if opt.Name != "" {
		win.SetWindowName(opt.Name)
	}
	_ = xproto.MapWindow(win.Conn, window)
	return nil
}

func (win *Window) Keyboard() *xinput.Keyboard {
	return win.kbd
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		close(win.done)
		if win.Conn != nil {
			win.Conn.Close()
		}
	})
	return nil
}

// Events delivers raw connection events and errors, to be given to
// HandleEvent. A closed connection delivers *event.WindowClose and ends the
// loop.
func (win *Window) Events() <-chan any {
	return win.events
}

// Ends when the connection closes, or when nobody reads after Close.
func (win *Window) eventLoop(wait func() (xgb.Event, xgb.Error)) {
	for {
		ev, xerr := wait()
		if ev == nil && xerr == nil {
			win.send(&event.WindowClose{})
			return
		}
		if xerr != nil && !win.send(error(xerr)) {
			return
		}
		if ev != nil && !win.send(ev) {
			return
		}
	}
}

func (win *Window) send(ev any) bool {
	select {
	case win.events <- ev:
		return true
	case <-win.done:
		return false
	}
}

// HandleEvent runs one event from Events through the keyboard. Returns a
// *event.KeyEvent, a *event.WindowClose, or nil when there is nothing to
// report.
func (win *Window) HandleEvent(ev any) (any, error) {
	switch t := ev.(type) {
	case error:
		return nil, t
	case *event.WindowClose:
		return t, nil

	case xproto.KeyPressEvent:
		if kev, ok := win.kbd.KeyPress(&t); ok {
			return kev, nil
		}
	case xproto.KeyReleaseEvent:
		if kev, ok := win.kbd.KeyRelease(&t); ok {
			return kev, nil
		}

	case xkb.GenericEvent:
		return nil, win.kbd.ProcessXkbEvent(t)
	case xproto.MappingNotifyEvent: // core keyboard mapping
		if t.Request == xproto.MappingKeyboard || t.Request == xproto.MappingModifier {
			return nil, win.kbd.ReloadKeymap()
		}

	case xproto.ClientMessageEvent:
		if win.Wmp.OnClientMessageDeleteWindow(&t) {
			return &event.WindowClose{}, nil
		}
		name, _ := xutil.GetAtomName(win.Conn, t.Type)
		win.logger.Debug().Str("type", name).Msg("client message")

	case xproto.MapNotifyEvent, xproto.ConfigureNotifyEvent,
		xproto.ReparentNotifyEvent, xproto.FocusInEvent, xproto.FocusOutEvent:
	default:
		win.logger.Debug().Str("event", fmt.Sprint(ev)).Msg("unhandled event")
	}
	return nil, nil
}

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

//----------

var Atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
