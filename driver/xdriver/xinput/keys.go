package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
)

// keysymToKey maps a keysym to a logical key: a named key when there is one,
// otherwise the character it types.
func keysymToKey(ks xproto.Keysym) (event.Key, bool) {
	if eks := keysymToEventKeySym(ks); eks != event.KSymNone {
		return event.NamedKey(eks), true
	}
	if ru := keysyms.ToRune(ks); ru != 0 {
		return event.CharKey(ru), true
	}
	return event.Key{}, false
}

// Constants from /usr/include/X11/keysymdef.h
func keysymToEventKeySym(ks xproto.Keysym) event.KeySym {
	if ks >= keysyms.F1 && ks < keysyms.F1+24 {
		return event.KSymF1 + event.KeySym(ks-keysyms.F1)
	}
	if ks >= keysyms.KP0 && ks <= keysyms.KP9 {
		return event.KSymKeypad0 + event.KeySym(ks-keysyms.KP0)
	}

	switch ks {
	case 0xff08:
		return event.KSymBackspace
	case 0xff09:
		return event.KSymTab
	case 0xfe20:
		return event.KSymTabLeft // ISOLeftTab
	case 0xff0d:
		return event.KSymReturn
	case 0xff1b:
		return event.KSymEscape
	case 0xffff:
		return event.KSymDelete
	case 0xff63:
		return event.KSymInsert
	case 0xff50:
		return event.KSymHome
	case 0xff57:
		return event.KSymEnd
	case 0xff58:
		return event.KSymBegin
	case 0xff51:
		return event.KSymLeft
	case 0xff52:
		return event.KSymUp
	case 0xff53:
		return event.KSymRight
	case 0xff54:
		return event.KSymDown
	case 0xff55:
		return event.KSymPageUp
	case 0xff56:
		return event.KSymPageDown
	case 0xff13:
		return event.KSymPause
	case 0xff61:
		return event.KSymPrint
	case 0xff67:
		return event.KSymMenu
	case 0xff6a:
		return event.KSymHelp
	case 0xff69:
		return event.KSymCancel
	case 0xff0b:
		return event.KSymClear
	case 0xff20:
		return event.KSymMultiKey

	case 0xffe1:
		return event.KSymShiftL
	case 0xffe2:
		return event.KSymShiftR
	case 0xffe3:
		return event.KSymControlL
	case 0xffe4:
		return event.KSymControlR
	case 0xffe9:
		return event.KSymAltL
	case 0xffea:
		return event.KSymAltR
	case 0xfe03:
		return event.KSymAltGr // ISOLevel3Shift
	case 0xffeb:
		return event.KSymSuperL // windows key
	case 0xffec:
		return event.KSymSuperR
	case 0xffe7:
		return event.KSymMetaL
	case 0xffe8:
		return event.KSymMetaR
	case 0xffed:
		return event.KSymHyperL
	case 0xffee:
		return event.KSymHyperR

	case 0xff7f:
		return event.KSymNumLock
	case 0xffe5:
		return event.KSymCapsLock
	case 0xffe6:
		return event.KSymShiftLock
	case 0xff14:
		return event.KSymScrollLock

	case 0xfe50:
		return event.KSymGrave
	case 0xfe51:
		return event.KSymAcute
	case 0xfe52:
		return event.KSymCircumflex
	case 0xfe53:
		return event.KSymTilde
	case 0xfe5b:
		return event.KSymCedilla
	case 0xfe55:
		return event.KSymBreve
	case 0xfe5a:
		return event.KSymCaron
	case 0xfe57:
		return event.KSymDiaresis
	case 0xfe58:
		return event.KSymRingAbove
	case 0xfe54:
		return event.KSymMacron

	// keypad with numlock off
	case 0xff95:
		return event.KSymHome
	case 0xff96:
		return event.KSymLeft
	case 0xff97:
		return event.KSymUp
	case 0xff98:
		return event.KSymRight
	case 0xff99:
		return event.KSymDown
	case 0xff9a:
		return event.KSymPageUp
	case 0xff9b:
		return event.KSymPageDown
	case 0xff9c:
		return event.KSymEnd
	case 0xff9d:
		return event.KSymBegin
	case 0xff9e:
		return event.KSymInsert
	case 0xff9f:
		return event.KSymKeypadDelete

	case 0xffaa:
		return event.KSymKeypadMultiply
	case 0xffab:
		return event.KSymKeypadAdd
	case 0xffad:
		return event.KSymKeypadSubtract
	case 0xffae:
		return event.KSymKeypadDecimal
	case 0xffaf:
		return event.KSymKeypadDivide
	case 0xff8d:
		return event.KSymKeypadEnter
	case 0xffac:
		return event.KSymKeypadSeparator
	case 0xffbd:
		return event.KSymKeypadEqual

	case 0x1008ff13:
		return event.KSymVolumeUp
	case 0x1008ff11:
		return event.KSymVolumeDown
	case 0x1008ff12:
		return event.KSymMute
	}
	return event.KSymNone
}
