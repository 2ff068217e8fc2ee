package xinput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput/compose"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput/mocks"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testDevice     = 3
	testFirstEvent = 85
)

const testCompose = `<dead_acute> <e> : "é" eacute
<dead_acute> <a> : "á" aacute
<dead_acute> <space> : "'" apostrophe
<dead_acute> <dead_acute> : "´" acute
`

func writeComposeFile(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "Compose")
	require.NoError(t, os.WriteFile(fn, []byte(testCompose), 0o644))
	return fn
}

func expectBootstrap(srv *mocks.MockServer) {
	dev := xkb.DeviceSpec(testDevice)
	srv.EXPECT().UseExtension(uint16(1), uint16(0)).
		Return(&xkb.UseExtensionReply{Supported: true, ServerMajor: 1}, nil).Once()
	srv.EXPECT().GetDeviceInfo(xkb.IDUseCoreKbd).
		Return(&xkb.GetDeviceInfoReply{DeviceID: testDevice, Name: "Virtual core keyboard"}, nil).Once()
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(testMapReply(), nil).Once()
	srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{DeviceID: testDevice}, nil).Once()
	srv.EXPECT().SelectEvents(dev, selectEventTypes, selectMapParts).Return(nil).Once()
	srv.EXPECT().FirstEvent().Return(uint8(testFirstEvent)).Once()
}

func newTestKeyboard(t *testing.T) (*Keyboard, *mocks.MockServer) {
	t.Helper()
	srv := mocks.NewMockServer(t)
	expectBootstrap(srv)
	kbd, fe, err := NewKeyboard(srv, &Options{ComposeFile: writeComposeFile(t)})
	require.NoError(t, err)
	require.Equal(t, uint8(testFirstEvent), fe)
	require.Equal(t, uint8(testDevice), kbd.DeviceID())
	return kbd, srv
}

//----------

func stateNotify(dev, baseMods, latchedMods, lockedMods uint8, baseGroup, latchedGroup int16, lockedGroup uint8) xkb.GenericEvent {
	b := make([]byte, 32)
	b[0] = testFirstEvent
	b[1] = xkb.StateNotify
	b[8] = dev
	b[9] = baseMods | latchedMods | lockedMods
	b[10] = baseMods
	b[11] = latchedMods
	b[12] = lockedMods
	b[14] = byte(baseGroup)
	b[15] = byte(uint16(baseGroup) >> 8)
	b[16] = byte(latchedGroup)
	b[17] = byte(uint16(latchedGroup) >> 8)
	b[18] = lockedGroup
	return xkb.GenericEvent(b)
}

func notify(xkbType, dev uint8) xkb.GenericEvent {
	b := make([]byte, 32)
	b[0] = testFirstEvent
	b[1] = xkbType
	b[8] = dev
	return xkb.GenericEvent(b)
}

func press(t *testing.T, kbd *Keyboard, kc xproto.Keycode) *event.KeyEvent {
	t.Helper()
	ev, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kc, Down: true})
	require.True(t, ok, "press %d", kc)
	return ev
}

func holdMods(t *testing.T, kbd *Keyboard, mods uint8) {
	t.Helper()
	require.NoError(t, kbd.ProcessXkbEvent(stateNotify(testDevice, mods, 0, 0, 0, 0, 0)))
}

//----------

func TestKeyboardPassThrough(t *testing.T) {
	kbd, _ := newTestKeyboard(t)

	type pair struct {
		kc  xproto.Keycode
		key event.Key
		ks  xproto.Keysym
	}
	pairs := []pair{
		{kcA, event.CharKey('a'), 'a'},
		{kc1, event.CharKey('1'), '1'},
		{kcSpace, event.CharKey(' '), ' '},
		{kcReturn, event.NamedKey(event.KSymReturn), keysyms.Return},
		{kcEscape, event.NamedKey(event.KSymEscape), keysyms.Escape},
		{kcF1, event.NamedKey(event.KSymF1), keysyms.F1},
		{kcShiftL, event.NamedKey(event.KSymShiftL), keysyms.ShiftL},
		{kcKP1, event.NamedKey(event.KSymEnd), 0xff9c},
	}
	for _, p := range pairs {
		ev := press(t, kbd, p.kc)
		assert.Equal(t, p.key, ev.Key, "kc=%d", p.kc)
		assert.Equal(t, uint32(p.ks), ev.Keysym)
		assert.Equal(t, uint8(p.kc), ev.Keycode)
		assert.Equal(t, 1, ev.RepeatCount)
		assert.True(t, ev.Down)
		assert.Equal(t, "", ev.Text)
		assert.Equal(t, compose.Nothing, kbd.ComposeStatus())
	}

	ev, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcA, Down: false})
	require.True(t, ok)
	assert.False(t, ev.Down)
	assert.Equal(t, event.CharKey('a'), ev.Key)
}

func TestKeyboardShiftC(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	holdMods(t, kbd, mShift)

	ev := press(t, kbd, kcC)
	assert.Equal(t, event.CharKey('C'), ev.Key)
	assert.Equal(t, event.ModNone, ev.Mods)
	assert.Equal(t, event.ModShift, ev.RawMods)
	assert.True(t, ev.Down)
}

func TestKeyboardShiftEnter(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	holdMods(t, kbd, mShift)

	ev := press(t, kbd, kcReturn)
	assert.Equal(t, event.NamedKey(event.KSymReturn), ev.Key)
	assert.Equal(t, event.ModShift, ev.Mods)
	assert.Equal(t, event.ModShift, ev.RawMods)
}

func TestKeyboardShiftCorrection(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	holdMods(t, kbd, mShift|mControl)

	for _, kc := range []xproto.Keycode{kcA, kc1, kcC, kcE} {
		ev := press(t, kbd, kc)
		assert.True(t, ev.Key.IsPrintableChar())
		assert.Equal(t, event.ModCtrl, ev.Mods, "kc=%d", kc)
		assert.Equal(t, event.ModShift|event.ModCtrl, ev.RawMods)
	}
	for _, kc := range []xproto.Keycode{kcReturn, kcTab, kcF1, kcSpace, kcEscape} {
		ev := press(t, kbd, kc)
		assert.Equal(t, ev.RawMods, ev.Mods, "kc=%d", kc)
	}
}

func TestKeyboardCompose(t *testing.T) {
	kbd, _ := newTestKeyboard(t)

	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	assert.False(t, ok)
	assert.Equal(t, compose.Composing, kbd.ComposeStatus())

	// releases do not touch the sequence
	ev, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: false})
	require.True(t, ok)
	assert.Equal(t, event.NamedKey(event.KSymAcute), ev.Key)
	assert.Equal(t, compose.Composing, kbd.ComposeStatus())

	ev = press(t, kbd, kcE)
	assert.Equal(t, event.CharKey('é'), ev.Key)
	assert.Equal(t, uint32(0xe9), ev.Keysym)
	assert.Equal(t, "é", ev.Text)
	assert.Equal(t, uint8(kcE), ev.Keycode)
	assert.Equal(t, compose.Nothing, kbd.ComposeStatus())

	ev = press(t, kbd, kcE)
	assert.Equal(t, event.CharKey('e'), ev.Key)
	assert.Equal(t, "", ev.Text)
}

func TestKeyboardComposeShiftInside(t *testing.T) {
	kbd, _ := newTestKeyboard(t)

	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	assert.False(t, ok)
	_, ok = kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcShiftL, Down: true})
	assert.False(t, ok)
	assert.Equal(t, compose.Composing, kbd.ComposeStatus())

	ev := press(t, kbd, kcA)
	assert.Equal(t, event.CharKey('á'), ev.Key)
}

func TestKeyboardComposeCancelled(t *testing.T) {
	kbd, _ := newTestKeyboard(t)

	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	assert.False(t, ok)
	_, ok = kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kc1, Down: true})
	assert.False(t, ok)
	assert.Equal(t, compose.Nothing, kbd.ComposeStatus())

	ev := press(t, kbd, kc1)
	assert.Equal(t, event.CharKey('1'), ev.Key)
}

func TestKeyboardComposeResultKeysym(t *testing.T) {
	kbd, _ := newTestKeyboard(t)

	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	assert.False(t, ok)
	ev := press(t, kbd, kcSpace)
	assert.Equal(t, event.CharKey('\''), ev.Key)
	assert.Equal(t, uint32(0x27), ev.Keysym)
}

func TestKeyboardUnmappedKey(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcUnmapped, Down: true})
	assert.False(t, ok)
	_, ok = kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcUnmapped, Down: false})
	assert.False(t, ok)
}

func TestKeyboardKeyPressEvents(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	ev, ok := kbd.KeyPress(&xproto.KeyPressEvent{Detail: kcA})
	require.True(t, ok)
	assert.True(t, ev.Down)
	ev, ok = kbd.KeyRelease(&xproto.KeyReleaseEvent{Detail: kcA})
	require.True(t, ok)
	assert.False(t, ev.Down)
}

//----------

func TestKeyboardModifiers(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	assert.Equal(t, event.ModNone, kbd.Modifiers())

	type pair struct {
		mods uint8
		em   event.KeyModifiers
	}
	pairs := []pair{
		{mShift, event.ModShift},
		{mControl, event.ModCtrl},
		{mMod1, event.ModAlt},
		{mMod4, event.ModSuper},
		{mMod3, event.ModSuper},
		{mMod2, event.ModNone}, // numlock
		{mLock, event.ModNone},
		{mMod5, event.ModNone},
		{mShift | mControl | mMod1 | mMod4, event.ModShift | event.ModCtrl | event.ModAlt | event.ModSuper},
	}
	for _, p := range pairs {
		holdMods(t, kbd, p.mods)
		assert.Equal(t, p.em, kbd.Modifiers(), "mods=%v", ModMaskString(p.mods))
	}

	// latched and locked count too
	require.NoError(t, kbd.ProcessXkbEvent(stateNotify(testDevice, 0, mShift, mMod4, 0, 0, 0)))
	assert.Equal(t, event.ModShift|event.ModSuper, kbd.Modifiers())
}

func TestKeyboardStateNotifyGroup(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	layout := kbd.KeymapState().Layout

	assert.Equal(t, event.CharKey('c'), press(t, kbd, kcC).Key)

	// locked group only: resolution changes, no reload
	require.NoError(t, kbd.ProcessXkbEvent(stateNotify(testDevice, 0, 0, 0, 0, 0, 1)))
	assert.Equal(t, event.CharKey('с'), press(t, kbd, kcC).Key) // cyrillic
	assert.Equal(t, 1, kbd.KeymapState().State.Group())
	assert.Same(t, layout, kbd.KeymapState().Layout)

	// locked mods change the modifiers the same way
	require.NoError(t, kbd.ProcessXkbEvent(stateNotify(testDevice, 0, 0, mMod1, 0, 0, 1)))
	assert.Equal(t, event.ModAlt, kbd.Modifiers())
	assert.Same(t, layout, kbd.KeymapState().Layout)
}

func TestKeyboardOtherDevice(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	require.NoError(t, kbd.ProcessXkbEvent(stateNotify(testDevice+1, mShift, 0, 0, 0, 0, 0)))
	assert.Equal(t, event.ModNone, kbd.Modifiers())

	// no reload: the mock has no GetMap expectation left
	require.NoError(t, kbd.ProcessXkbEvent(notify(xkb.NewKeyboardNotify, testDevice+1)))
}

func TestKeyboardShortEvent(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	err := kbd.ProcessXkbEvent(xkb.GenericEvent(stateNotify(testDevice, 0, 0, 0, 0, 0, 0)[:12]))
	assert.True(t, errors.Is(err, xkb.ErrShortEvent))
	err = kbd.ProcessXkbEvent(xkb.GenericEvent{testFirstEvent, xkb.StateNotify})
	assert.True(t, errors.Is(err, xkb.ErrShortEvent))
}

func TestKeyboardUnknownEvent(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	assert.NoError(t, kbd.ProcessXkbEvent(notify(xkb.ControlsNotify, testDevice)))
}

//----------

func TestKeyboardNewKeyboardNotify(t *testing.T) {
	kbd, srv := newTestKeyboard(t)
	old := kbd.KeymapState()

	// start a sequence
	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	require.False(t, ok)

	// new layout: a and c swapped
	r := testMapReply()
	r.KeySyms[kcA-8], r.KeySyms[kcC-8] = r.KeySyms[kcC-8], r.KeySyms[kcA-8]
	dev := xkb.DeviceSpec(testDevice)
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(r, nil).Once()
	srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{DeviceID: testDevice}, nil).Once()

	require.NoError(t, kbd.ProcessXkbEvent(notify(xkb.NewKeyboardNotify, testDevice)))
	km := kbd.KeymapState()
	assert.NotSame(t, old.Layout, km.Layout)
	assert.NotSame(t, old.State, km.State)
	assert.Same(t, km.Layout, km.State.Layout())

	// compose is untouched by the reload
	assert.Equal(t, compose.Composing, kbd.ComposeStatus())
	ev := press(t, kbd, kcE)
	assert.Equal(t, event.CharKey('é'), ev.Key)

	// new layout in use
	assert.Equal(t, event.CharKey('c'), press(t, kbd, kcA).Key)
}

func TestKeyboardMapNotifyResetsState(t *testing.T) {
	kbd, srv := newTestKeyboard(t)
	holdMods(t, kbd, mShift)
	require.Equal(t, event.ModShift, kbd.Modifiers())

	dev := xkb.DeviceSpec(testDevice)
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(testMapReply(), nil).Once()
	srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{DeviceID: testDevice}, nil).Once()
	require.NoError(t, kbd.ProcessXkbEvent(notify(xkb.MapNotify, testDevice)))

	// state comes from the new reply
	assert.Equal(t, event.ModNone, kbd.Modifiers())
}

func TestKeyboardReloadFailure(t *testing.T) {
	kbd, srv := newTestKeyboard(t)
	holdMods(t, kbd, mShift)
	old := kbd.KeymapState()
	dev := xkb.DeviceSpec(testDevice)

	// server error
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(nil, errors.New("connection lost")).Once()
	err := kbd.ProcessXkbEvent(notify(xkb.MapNotify, testDevice))
	var rerr *ReloadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, old, kbd.KeymapState())

	// invalid layout
	bad := testMapReply()
	bad.Types = nil
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(bad, nil).Once()
	srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{}, nil).Once()
	err = kbd.ReloadKeymap()
	require.True(t, errors.As(err, &rerr))

	// missing state
	srv.EXPECT().GetMap(dev, layoutMapParts).Return(testMapReply(), nil).Once()
	srv.EXPECT().GetState(dev).Return(nil, nil).Once()
	err = kbd.ReloadKeymap()
	require.True(t, errors.As(err, &rerr))

	// old pair still in use
	assert.Equal(t, old, kbd.KeymapState())
	assert.Equal(t, event.ModShift, kbd.Modifiers())
	ev := press(t, kbd, kcA)
	assert.Equal(t, event.CharKey('A'), ev.Key)
	assert.Equal(t, event.ModShift, ev.RawMods)
}

func TestKeyboardSetComposeTable(t *testing.T) {
	kbd, _ := newTestKeyboard(t)
	_, ok := kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcApos, Down: true})
	require.False(t, ok)

	tab := compose.NewTable("C")
	require.NoError(t, tab.Add([]xproto.Keysym{'a', 'c'}, "↯", 0))
	kbd.SetComposeTable(tab)
	assert.Same(t, tab, kbd.ComposeTable())
	assert.Equal(t, compose.Nothing, kbd.ComposeStatus())

	// dead_acute is a plain key now
	ev := press(t, kbd, kcApos)
	assert.Equal(t, event.NamedKey(event.KSymAcute), ev.Key)

	_, ok = kbd.ProcessKeyEvent(RawKeyEvent{Keycode: kcA, Down: true})
	assert.False(t, ok)
	ev = press(t, kbd, kcC)
	assert.Equal(t, event.CharKey('↯'), ev.Key)
	assert.Equal(t, "↯", ev.Text)
}

//----------

func TestNewKeyboardErrors(t *testing.T) {
	dev := xkb.DeviceSpec(testDevice)
	type testCase struct {
		name  string
		stage InitStage
		setup func(srv *mocks.MockServer)
		opt   func(opt *Options)
	}
	cases := []testCase{
		{
			name:  "unsupported",
			stage: StageExtension,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: false, ServerMajor: 0, ServerMinor: 7}, nil)
			},
		},
		{
			name:  "no device",
			stage: StageDevice,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: true}, nil)
				srv.EXPECT().GetDeviceInfo(xkb.IDUseCoreKbd).Return(nil, errors.New("BadKeyboard"))
			},
		},
		{
			name:  "bad device name",
			stage: StageDevice,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: true}, nil)
			},
			opt: func(opt *Options) { opt.Device = "keyboard" },
		},
		{
			name:  "keymap",
			stage: StageKeymap,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: true}, nil)
				srv.EXPECT().GetDeviceInfo(xkb.DeviceSpec(7)).
					Return(&xkb.GetDeviceInfoReply{DeviceID: testDevice}, nil)
				srv.EXPECT().GetMap(dev, layoutMapParts).Return(&xkb.GetMapReply{}, nil)
				srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{}, nil)
			},
			opt: func(opt *Options) { opt.Device = "7" },
		},
		{
			name:  "compose",
			stage: StageCompose,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: true}, nil)
				srv.EXPECT().GetDeviceInfo(xkb.IDUseCoreKbd).
					Return(&xkb.GetDeviceInfoReply{DeviceID: testDevice}, nil)
				srv.EXPECT().GetMap(dev, layoutMapParts).Return(testMapReply(), nil)
				srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{}, nil)
			},
			opt: func(opt *Options) {
				opt.ComposeFile = ""
				opt.Locale = "xx_YY"
				opt.ComposePaths = &compose.Paths{XLocaleDir: t.TempDir()}
			},
		},
		{
			name:  "select events",
			stage: StageSelectEvents,
			setup: func(srv *mocks.MockServer) {
				srv.EXPECT().UseExtension(mock.Anything, mock.Anything).
					Return(&xkb.UseExtensionReply{Supported: true}, nil)
				srv.EXPECT().GetDeviceInfo(mock.Anything).
					Return(&xkb.GetDeviceInfoReply{DeviceID: testDevice}, nil)
				srv.EXPECT().GetMap(dev, layoutMapParts).Return(testMapReply(), nil)
				srv.EXPECT().GetState(dev).Return(&xkb.GetStateReply{}, nil)
				srv.EXPECT().SelectEvents(dev, mock.Anything, mock.Anything).Return(errors.New("BadMatch"))
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := mocks.NewMockServer(t)
			c.setup(srv)
			opt := &Options{ComposeFile: writeComposeFile(t)}
			if c.opt != nil {
				c.opt(opt)
			}
			kbd, fe, err := NewKeyboard(srv, opt)
			assert.Nil(t, kbd)
			assert.Equal(t, uint8(0), fe)
			var ierr *InitError
			require.True(t, errors.As(err, &ierr), "%v", err)
			assert.Equal(t, c.stage, ierr.Stage)
			if c.stage == StageCompose {
				assert.True(t, errors.Is(err, compose.ErrNoComposeTable))
			}
		})
	}
}
