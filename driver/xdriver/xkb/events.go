package xkb

import "fmt"

// Event is a decoded XKEYBOARD event.
type Event interface {
	XkbType() uint8
	Device() uint8
}

type StateNotifyEvent struct {
	DeviceID     uint8
	Mods         uint8
	BaseMods     uint8
	LatchedMods  uint8
	LockedMods   uint8
	Group        uint8
	BaseGroup    int16
	LatchedGroup int16
	LockedGroup  uint8
	Changed      uint16
	Keycode      uint8
}

func (ev *StateNotifyEvent) XkbType() uint8 { return StateNotify }
func (ev *StateNotifyEvent) Device() uint8  { return ev.DeviceID }

type MapNotifyEvent struct {
	DeviceID   uint8
	Changed    uint16
	MinKeyCode uint8
	MaxKeyCode uint8
}

func (ev *MapNotifyEvent) XkbType() uint8 { return MapNotify }
func (ev *MapNotifyEvent) Device() uint8  { return ev.DeviceID }

type NewKeyboardNotifyEvent struct {
	DeviceID    uint8
	OldDeviceID uint8
	MinKeyCode  uint8
	MaxKeyCode  uint8
	Changed     uint16
}

func (ev *NewKeyboardNotifyEvent) XkbType() uint8 { return NewKeyboardNotify }
func (ev *NewKeyboardNotifyEvent) Device() uint8  { return ev.DeviceID }

// UnknownEvent is any sub-type this package does not decode.
type UnknownEvent struct {
	Type     uint8
	DeviceID uint8
}

func (ev *UnknownEvent) XkbType() uint8 { return ev.Type }
func (ev *UnknownEvent) Device() uint8  { return ev.DeviceID }

//----------

// ParseEvent reads the sub-type and device first, then decodes the rest of
// the event for that sub-type only. Truncated events return an error
// wrapping ErrShortEvent.
func ParseEvent(ev GenericEvent) (Event, error) {
	xt, err := ev.XkbType()
	if err != nil {
		return nil, err
	}
	dev, err := ev.DeviceID()
	if err != nil {
		return nil, err
	}

	r := reader{buf: ev}
	switch xt {
	case StateNotify:
		v := &StateNotifyEvent{DeviceID: dev}
		v.Mods = r.u8(9)
		v.BaseMods = r.u8(10)
		v.LatchedMods = r.u8(11)
		v.LockedMods = r.u8(12)
		v.Group = r.u8(13)
		v.BaseGroup = int16(r.u16(14))
		v.LatchedGroup = int16(r.u16(16))
		v.LockedGroup = r.u8(18)
		v.Changed = r.u16(26)
		v.Keycode = r.u8(28)
		if r.err != nil {
			return nil, eventError("StateNotify", r.err)
		}
		return v, nil
	case MapNotify:
		v := &MapNotifyEvent{DeviceID: dev}
		v.Changed = r.u16(10)
		v.MinKeyCode = r.u8(12)
		v.MaxKeyCode = r.u8(13)
		if r.err != nil {
			return nil, eventError("MapNotify", r.err)
		}
		return v, nil
	case NewKeyboardNotify:
		v := &NewKeyboardNotifyEvent{DeviceID: dev}
		v.OldDeviceID = r.u8(9)
		v.MinKeyCode = r.u8(10)
		v.MaxKeyCode = r.u8(11)
		v.Changed = r.u16(16)
		if r.err != nil {
			return nil, eventError("NewKeyboardNotify", r.err)
		}
		return v, nil
	}
	return &UnknownEvent{Type: xt, DeviceID: dev}, nil
}

func (ev *StateNotifyEvent) String() string {
	return fmt.Sprintf("StateNotify {dev=%d mods=0x%x base=0x%x latched=0x%x locked=0x%x group=%d base=%d latched=%d locked=%d}",
		ev.DeviceID, ev.Mods, ev.BaseMods, ev.LatchedMods, ev.LockedMods,
		ev.Group, ev.BaseGroup, ev.LatchedGroup, ev.LockedGroup)
}
