// Package xinput translates X keyboard events into normalized key events,
// tracking the XKEYBOARD layout and state of one device and running compose
// sequences.
package xinput

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput/compose"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const selectEventTypes = xkb.EventTypeNewKeyboardNotify |
	xkb.EventTypeMapNotify |
	xkb.EventTypeStateNotify

type Options struct {
	Device       string // "" or "core" for the core keyboard, or a device id
	Locale       string // empty: from the environment
	ComposeFile  string // overrides the locale compose table
	ComposePaths *compose.Paths
	Logger       zerolog.Logger
}

// Keyboard owns the keymap and compose state of one device. It is not safe
// for concurrent use: a single event loop calls it for every event.
type Keyboard struct {
	srv      Server
	deviceID uint8
	km       KeymapState
	compose  *compose.State
	logger   zerolog.Logger
}

// NewKeyboard bootstraps a keyboard from the server. Returns the first event
// code of the extension, used to recognize XKEYBOARD events.
func NewKeyboard(srv Server, opt *Options) (*Keyboard, uint8, error) {
	if opt == nil {
		opt = &Options{Logger: zerolog.Nop()}
	}
	kbd := &Keyboard{srv: srv, logger: opt.Logger}

	r, err := srv.UseExtension(xkb.MajorVersion, xkb.MinorVersion)
	if err == nil && (r == nil || !r.Supported) {
		err = errors.Errorf("xkb %d.%d not supported", xkb.MajorVersion, xkb.MinorVersion)
		if r != nil {
			err = errors.Wrapf(err, "server has %d.%d", r.ServerMajor, r.ServerMinor)
		}
	}
	if err != nil {
		return nil, 0, &InitError{StageExtension, err}
	}

	id, err := kbd.resolveDevice(opt.Device)
	if err != nil {
		return nil, 0, &InitError{StageDevice, err}
	}
	kbd.deviceID = id

	km, err := kbd.readKeymapState()
	if err != nil {
		return nil, 0, &InitError{StageKeymap, err}
	}
	kbd.km = km

	table, err := loadComposeTable(opt)
	if err != nil {
		return nil, 0, &InitError{StageCompose, err}
	}
	kbd.compose = compose.NewState(table)

	dev := xkb.DeviceSpec(kbd.deviceID)
	if err := srv.SelectEvents(dev, selectEventTypes, selectMapParts); err != nil {
		return nil, 0, &InitError{StageSelectEvents, err}
	}

	kbd.logger.Debug().
		Uint8("device", kbd.deviceID).
		Str("layout", km.Layout.String()).
		Str("compose", table.Path).
		Int("sequences", table.Len()).
		Msg("keyboard ready")
	return kbd, srv.FirstEvent(), nil
}

func (kbd *Keyboard) resolveDevice(s string) (uint8, error) {
	dev := xkb.IDUseCoreKbd
	if s != "" && s != "core" {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, errors.Wrapf(err, "device %q", s)
		}
		dev = xkb.DeviceSpec(v)
	}
	r, err := kbd.srv.GetDeviceInfo(dev)
	if err != nil {
		return 0, err
	}
	if r == nil {
		return 0, errors.Errorf("no keyboard device for %#x", uint16(dev))
	}
	kbd.logger.Debug().Uint8("device", r.DeviceID).Str("name", r.Name).Msg("keyboard device")
	return r.DeviceID, nil
}

func (kbd *Keyboard) readKeymapState() (KeymapState, error) {
	dev := xkb.DeviceSpec(kbd.deviceID)
	m, err := kbd.srv.GetMap(dev, layoutMapParts)
	if err != nil {
		return KeymapState{}, errors.Wrap(err, "get map")
	}
	s, err := kbd.srv.GetState(dev)
	if err != nil {
		return KeymapState{}, errors.Wrap(err, "get state")
	}
	return NewKeymapState(m, s)
}

func loadComposeTable(opt *Options) (*compose.Table, error) {
	copt := compose.Options{
		Locale: opt.Locale,
		Paths:  opt.ComposePaths,
		Logger: opt.Logger,
	}
	if opt.ComposeFile != "" {
		return compose.FromFile(opt.ComposeFile, copt)
	}
	return compose.FromLocale(copt)
}

//----------

func (kbd *Keyboard) DeviceID() uint8 {
	return kbd.deviceID
}

func (kbd *Keyboard) KeymapState() KeymapState {
	return kbd.km
}

func (kbd *Keyboard) ComposeStatus() compose.Status {
	return kbd.compose.Status()
}

func (kbd *Keyboard) ComposeTable() *compose.Table {
	return kbd.compose.Table()
}

// SetComposeTable replaces the compose table. A sequence in progress is
// dropped.
func (kbd *Keyboard) SetComposeTable(t *compose.Table) {
	kbd.compose = compose.NewState(t)
}

//----------

type RawKeyEvent struct {
	Keycode xproto.Keycode
	Down    bool
}

func (kbd *Keyboard) KeyPress(ev *xproto.KeyPressEvent) (*event.KeyEvent, bool) {
	return kbd.ProcessKeyEvent(RawKeyEvent{Keycode: ev.Detail, Down: true})
}

func (kbd *Keyboard) KeyRelease(ev *xproto.KeyReleaseEvent) (*event.KeyEvent, bool) {
	return kbd.ProcessKeyEvent(RawKeyEvent{Keycode: ev.Detail, Down: false})
}

// ProcessKeyEvent translates a key press or release. Presses go through the
// compose state first: presses inside a sequence, or that cancel one, give
// no event.
func (kbd *Keyboard) ProcessKeyEvent(ev RawKeyEvent) (*event.KeyEvent, bool) {
	xsym := kbd.km.State.KeyGetOneSym(ev.Keycode)

	ks, text := xsym, ""
	if ev.Down {
		kbd.compose.Feed(xsym)
		switch kbd.compose.Status() {
		case compose.Composing:
			return nil, false
		case compose.Composed:
			text = kbd.compose.Utf8()
			if cks := kbd.compose.Keysym(); cks != keysyms.NoSymbol {
				ks = cks
			}
			kbd.compose.Reset()
		case compose.Cancelled:
			kbd.compose.Reset()
			return nil, false
		}
	}

	key, ok := keysymToKey(ks)
	if !ok {
		ks = xsym
		key, ok = keysymToKey(xsym)
		if !ok {
			kbd.logger.Debug().
				Uint8("keycode", uint8(ev.Keycode)).
				Str("keysym", keysyms.Name(xsym)).
				Msg("key without mapping")
			return nil, false
		}
	}

	raw := kbd.Modifiers()
	return &event.KeyEvent{
		Key:         key,
		Mods:        correctModifiers(key, raw),
		RawMods:     raw,
		Keycode:     uint8(ev.Keycode),
		Keysym:      uint32(ks),
		Text:        text,
		RepeatCount: 1,
		Down:        ev.Down,
	}, true
}

// Modifiers returns the active modifiers, with no correction.
func (kbd *Keyboard) Modifiers() event.KeyModifiers {
	return stateModifiers(kbd.km.State)
}

//----------

// ProcessXkbEvent handles an XKEYBOARD event of this keyboard's device.
// State changes update the state in place, layout changes reload the keymap.
func (kbd *Keyboard) ProcessXkbEvent(gev xkb.GenericEvent) error {
	ev, err := xkb.ParseEvent(gev)
	if err != nil {
		return err
	}
	if ev.Device() != kbd.deviceID {
		kbd.logger.Debug().
			Uint8("device", ev.Device()).
			Uint8("xkbType", ev.XkbType()).
			Msg("event for another device")
		return nil
	}
	switch t := ev.(type) {
	case *xkb.StateNotifyEvent:
		kbd.km.State.UpdateMask(t.BaseMods, t.LatchedMods, t.LockedMods,
			t.BaseGroup, t.LatchedGroup, t.LockedGroup)
	case *xkb.MapNotifyEvent, *xkb.NewKeyboardNotifyEvent:
		return kbd.ReloadKeymap()
	}
	return nil
}

// ReloadKeymap reads a new layout and state from the server. On error the
// current ones are kept.
func (kbd *Keyboard) ReloadKeymap() error {
	km, err := kbd.readKeymapState()
	if err != nil {
		return &ReloadError{err}
	}
	kbd.km = km
	kbd.logger.Debug().Str("layout", km.Layout.String()).Msg("keymap reloaded")
	return nil
}

//----------

type InitStage int

const (
	StageExtension InitStage = iota
	StageDevice
	StageKeymap
	StageCompose
	StageSelectEvents
)

func (s InitStage) String() string {
	switch s {
	case StageExtension:
		return "extension"
	case StageDevice:
		return "device"
	case StageKeymap:
		return "keymap"
	case StageCompose:
		return "compose"
	case StageSelectEvents:
		return "select events"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

type InitError struct {
	Stage InitStage
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("keyboard init: %v: %v", e.Stage, e.Err)
}
func (e *InitError) Unwrap() error { return e.Err }
func (e *InitError) Cause() error  { return e.Err }

type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string {
	return fmt.Sprintf("keymap reload: %v", e.Err)
}
func (e *ReloadError) Unwrap() error { return e.Err }
func (e *ReloadError) Cause() error  { return e.Err }
