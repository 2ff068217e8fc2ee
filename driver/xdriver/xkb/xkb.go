// Package xkb is a client for the parts of the XKEYBOARD extension needed to
// track a keyboard: version negotiation, device lookup, keymap and state
// queries, and event selection. It plugs into an xgb connection the same way
// the xgb extension packages do.
package xkb

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const ExtName = "XKEYBOARD"

// Version this package speaks.
const (
	MajorVersion = 1
	MinorVersion = 0
)

type DeviceSpec uint16

const (
	IDUseCoreKbd  DeviceSpec = 0x100
	IDDfltXIClass            = 0x300
	IDDfltXIId               = 0x400
)

// Event sub-types, found at byte 1 of every XKEYBOARD event.
const (
	NewKeyboardNotify = 0
	MapNotify         = 1
	StateNotify       = 2
	ControlsNotify    = 3
)

// Masks for SelectEvents.
const (
	EventTypeNewKeyboardNotify uint16 = 1 << NewKeyboardNotify
	EventTypeMapNotify         uint16 = 1 << MapNotify
	EventTypeStateNotify       uint16 = 1 << StateNotify
)

// Map parts for GetMap and SelectEvents.
const (
	MapPartKeyTypes           uint16 = 1 << 0
	MapPartKeySyms            uint16 = 1 << 1
	MapPartModifierMap        uint16 = 1 << 2
	MapPartExplicitComponents uint16 = 1 << 3
	MapPartKeyActions         uint16 = 1 << 4
	MapPartKeyBehaviors       uint16 = 1 << 5
	MapPartVirtualMods        uint16 = 1 << 6
	MapPartVirtualModMap      uint16 = 1 << 7
)

// Init must be called before using the XKEYBOARD extension. It returns the
// extension's first event code. Every XKEYBOARD event arrives with that code
// as a GenericEvent.
func Init(c *xgb.Conn) (uint8, error) {
	reply, err := xproto.QueryExtension(c, uint16(len(ExtName)), ExtName).Reply()
	switch {
	case err != nil:
		return 0, err
	case !reply.Present:
		return 0, xgb.Errorf("No extension named %s could be found on on the server.", ExtName)
	}

	c.ExtLock.Lock()
	c.Extensions[ExtName] = reply.MajorOpcode
	c.ExtLock.Unlock()
	xgb.NewEventFuncs[int(reply.FirstEvent)] = GenericEventNew
	xgb.NewErrorFuncs[int(reply.FirstError)] = KeyboardErrorNew
	return reply.FirstEvent, nil
}

//----------

// GenericEvent holds the raw bytes of any XKEYBOARD event. Use ParseEvent to
// get a typed view.
type GenericEvent []byte

// GenericEventNew implements xgb.NewEventFun.
func GenericEventNew(buf []byte) xgb.Event {
	b := make([]byte, len(buf))
	copy(b, buf)
	return GenericEvent(b)
}

func (ev GenericEvent) Bytes() []byte {
	return ev
}

func (ev GenericEvent) String() string {
	xt, err := ev.XkbType()
	if err != nil {
		return fmt.Sprintf("XkbEvent {%v}", err)
	}
	dev, _ := ev.DeviceID()
	return fmt.Sprintf("XkbEvent {XkbType: %d, DeviceID: %d}", xt, dev)
}

func (ev GenericEvent) XkbType() (uint8, error) {
	return reader{buf: ev}.at8(1)
}

func (ev GenericEvent) DeviceID() (uint8, error) {
	return reader{buf: ev}.at8(8)
}

//----------

type KeyboardError struct {
	Sequence    uint16
	NiceName    string
	Value       uint32
	MinorOpcode uint16
	MajorOpcode byte
}

// KeyboardErrorNew constructs a KeyboardError value that implements xgb.Error from a byte slice.
func KeyboardErrorNew(buf []byte) xgb.Error {
	v := KeyboardError{NiceName: "Keyboard"}
	v.Sequence = xgb.Get16(buf[2:])
	v.Value = xgb.Get32(buf[4:])
	v.MinorOpcode = xgb.Get16(buf[8:])
	v.MajorOpcode = buf[10]
	return v
}

func (err KeyboardError) SequenceId() uint16 {
	return err.Sequence
}

func (err KeyboardError) BadId() uint32 {
	return err.Value
}

func (err KeyboardError) Error() string {
	return fmt.Sprintf("BadKeyboard {Sequence: %d, Value: 0x%x, MajorOpcode: %d, MinorOpcode: %d}",
		err.Sequence, err.Value, err.MajorOpcode, err.MinorOpcode)
}

//----------

func newRequest(c *xgb.Conn, name string, opcode byte, size int) []byte {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	major, ok := c.Extensions[ExtName]
	if !ok {
		panic("Cannot issue request '" + name + "' using the uninitialized extension 'XKEYBOARD'. xkb.Init(connObj) must be called first.")
	}
	buf := make([]byte, size)
	buf[0] = major
	buf[1] = opcode
	xgb.Put16(buf[2:], uint16(size/4))
	return buf
}

//----------

type UseExtensionCookie struct {
	*xgb.Cookie
}

// UseExtension negotiates the protocol version. The server ignores every
// other XKEYBOARD request from a client that has not sent it.
func UseExtension(c *xgb.Conn, wantedMajor, wantedMinor uint16) UseExtensionCookie {
	buf := newRequest(c, "UseExtension", 0, 8)
	xgb.Put16(buf[4:], wantedMajor)
	xgb.Put16(buf[6:], wantedMinor)
	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return UseExtensionCookie{cookie}
}

type UseExtensionReply struct {
	Supported   bool
	ServerMajor uint16
	ServerMinor uint16
}

func (cook UseExtensionCookie) Reply() (*UseExtensionReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return ParseUseExtensionReply(buf)
}

func ParseUseExtensionReply(buf []byte) (*UseExtensionReply, error) {
	r := reader{buf: buf}
	v := &UseExtensionReply{}
	v.Supported = r.u8(1) != 0
	v.ServerMajor = r.u16(8)
	v.ServerMinor = r.u16(10)
	if r.err != nil {
		return nil, replyError("UseExtension", r.err)
	}
	return v, nil
}

//----------

type SelectEventsCookie struct {
	*xgb.Cookie
}

// SelectEventsChecked selects all details of the given event types, and the
// given map parts for MapNotify.
func SelectEventsChecked(c *xgb.Conn, device DeviceSpec, events, mapParts uint16) SelectEventsCookie {
	buf := newRequest(c, "SelectEvents", 1, 16)
	xgb.Put16(buf[4:], uint16(device))
	xgb.Put16(buf[6:], events)  // affectWhich
	xgb.Put16(buf[8:], 0)       // clear
	xgb.Put16(buf[10:], events) // selectAll
	xgb.Put16(buf[12:], mapParts)
	xgb.Put16(buf[14:], mapParts)
	cookie := c.NewCookie(true, false)
	c.NewRequest(buf, cookie)
	return SelectEventsCookie{cookie}
}

func (cook SelectEventsCookie) Check() error {
	return cook.Cookie.Check()
}

//----------

type GetStateCookie struct {
	*xgb.Cookie
}

func GetState(c *xgb.Conn, device DeviceSpec) GetStateCookie {
	buf := newRequest(c, "GetState", 4, 8)
	xgb.Put16(buf[4:], uint16(device))
	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return GetStateCookie{cookie}
}

type GetStateReply struct {
	DeviceID     uint8
	Mods         uint8
	BaseMods     uint8
	LatchedMods  uint8
	LockedMods   uint8
	Group        uint8
	LockedGroup  uint8
	BaseGroup    int16
	LatchedGroup int16
}

func (cook GetStateCookie) Reply() (*GetStateReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return ParseGetStateReply(buf)
}

func ParseGetStateReply(buf []byte) (*GetStateReply, error) {
	r := reader{buf: buf}
	v := &GetStateReply{}
	v.DeviceID = r.u8(1)
	v.Mods = r.u8(8)
	v.BaseMods = r.u8(9)
	v.LatchedMods = r.u8(10)
	v.LockedMods = r.u8(11)
	v.Group = r.u8(12)
	v.LockedGroup = r.u8(13)
	v.BaseGroup = int16(r.u16(14))
	v.LatchedGroup = int16(r.u16(16))
	if r.err != nil {
		return nil, replyError("GetState", r.err)
	}
	return v, nil
}

//----------

type GetDeviceInfoCookie struct {
	*xgb.Cookie
}

// GetDeviceInfo asks only for the device header, which is all that is needed
// to resolve a device specifier such as IDUseCoreKbd to a real device id.
func GetDeviceInfo(c *xgb.Conn, device DeviceSpec) GetDeviceInfoCookie {
	buf := newRequest(c, "GetDeviceInfo", 24, 16)
	xgb.Put16(buf[4:], uint16(device))
	xgb.Put16(buf[12:], IDDfltXIClass) // ledClass
	xgb.Put16(buf[14:], IDDfltXIId)    // ledID
	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return GetDeviceInfoCookie{cookie}
}

type GetDeviceInfoReply struct {
	DeviceID uint8
	DevType  xproto.Atom
	Name     string
}

func (cook GetDeviceInfoCookie) Reply() (*GetDeviceInfoReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return ParseGetDeviceInfoReply(buf)
}

func ParseGetDeviceInfoReply(buf []byte) (*GetDeviceInfoReply, error) {
	r := reader{buf: buf}
	v := &GetDeviceInfoReply{}
	v.DeviceID = r.u8(1)
	v.DevType = xproto.Atom(r.u32(28))
	n := int(r.u16(32))
	v.Name = string(r.bytes(34, n))
	if r.err != nil {
		return nil, replyError("GetDeviceInfo", r.err)
	}
	return v, nil
}

//----------

type GetMapCookie struct {
	*xgb.Cookie
}

// GetMap requests the full set of the given map parts.
func GetMap(c *xgb.Conn, device DeviceSpec, full uint16) GetMapCookie {
	buf := newRequest(c, "GetMap", 8, 28)
	xgb.Put16(buf[4:], uint16(device))
	xgb.Put16(buf[6:], full)
	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return GetMapCookie{cookie}
}

func (cook GetMapCookie) Reply() (*GetMapReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return ParseGetMapReply(buf)
}
