package event

import (
	"fmt"
	"unicode"

	"github.com/jmigpin/xkeyboard/util/flagsutil"
)

// Named keys. Characters are not named: they travel as a rune in Key.
type KeySym int

const (
	KSymNone KeySym = iota

	KSymBackspace
	KSymTab
	KSymTabLeft
	KSymReturn
	KSymEscape
	KSymDelete
	KSymInsert
	KSymHome
	KSymEnd
	KSymBegin
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymPause
	KSymPrint
	KSymMenu
	KSymHelp
	KSymCancel
	KSymClear
	KSymMultiKey

	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
	KSymAltGr
	KSymSuperL // windows key
	KSymSuperR
	KSymMetaL
	KSymMetaR
	KSymHyperL
	KSymHyperR

	KSymNumLock
	KSymCapsLock
	KSymShiftLock
	KSymScrollLock

	KSymGrave      // `
	KSymAcute      // ´
	KSymCircumflex // ^
	KSymTilde      // ~
	KSymCedilla    // ¸
	KSymBreve      // ˘
	KSymCaron      // ˇ
	KSymDiaresis   // ¨
	KSymRingAbove  // ˚
	KSymMacron     // ¯

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12
	KSymF13
	KSymF14
	KSymF15
	KSymF16
	KSymF17
	KSymF18
	KSymF19
	KSymF20
	KSymF21
	KSymF22
	KSymF23
	KSymF24

	KSymKeypad0
	KSymKeypad1
	KSymKeypad2
	KSymKeypad3
	KSymKeypad4
	KSymKeypad5
	KSymKeypad6
	KSymKeypad7
	KSymKeypad8
	KSymKeypad9
	KSymKeypadMultiply
	KSymKeypadAdd
	KSymKeypadSubtract
	KSymKeypadDecimal
	KSymKeypadDivide
	KSymKeypadSeparator
	KSymKeypadEqual
	KSymKeypadEnter
	KSymKeypadDelete

	KSymVolumeUp
	KSymVolumeDown
	KSymMute

	kSymLast
)

var keySymNames = [...]string{
	KSymNone:            "None",
	KSymBackspace:       "Backspace",
	KSymTab:             "Tab",
	KSymTabLeft:         "TabLeft",
	KSymReturn:          "Return",
	KSymEscape:          "Escape",
	KSymDelete:          "Delete",
	KSymInsert:          "Insert",
	KSymHome:            "Home",
	KSymEnd:             "End",
	KSymBegin:           "Begin",
	KSymLeft:            "Left",
	KSymUp:              "Up",
	KSymRight:           "Right",
	KSymDown:            "Down",
	KSymPageUp:          "PageUp",
	KSymPageDown:        "PageDown",
	KSymPause:           "Pause",
	KSymPrint:           "Print",
	KSymMenu:            "Menu",
	KSymHelp:            "Help",
	KSymCancel:          "Cancel",
	KSymClear:           "Clear",
	KSymMultiKey:        "MultiKey",
	KSymShiftL:          "ShiftL",
	KSymShiftR:          "ShiftR",
	KSymControlL:        "ControlL",
	KSymControlR:        "ControlR",
	KSymAltL:            "AltL",
	KSymAltR:            "AltR",
	KSymAltGr:           "AltGr",
	KSymSuperL:          "SuperL",
	KSymSuperR:          "SuperR",
	KSymMetaL:           "MetaL",
	KSymMetaR:           "MetaR",
	KSymHyperL:          "HyperL",
	KSymHyperR:          "HyperR",
	KSymNumLock:         "NumLock",
	KSymCapsLock:        "CapsLock",
	KSymShiftLock:       "ShiftLock",
	KSymScrollLock:      "ScrollLock",
	KSymGrave:           "Grave",
	KSymAcute:           "Acute",
	KSymCircumflex:      "Circumflex",
	KSymTilde:           "Tilde",
	KSymCedilla:         "Cedilla",
	KSymBreve:           "Breve",
	KSymCaron:           "Caron",
	KSymDiaresis:        "Diaresis",
	KSymRingAbove:       "RingAbove",
	KSymMacron:          "Macron",
	KSymF1:              "F1",
	KSymF2:              "F2",
	KSymF3:              "F3",
	KSymF4:              "F4",
	KSymF5:              "F5",
	KSymF6:              "F6",
	KSymF7:              "F7",
	KSymF8:              "F8",
	KSymF9:              "F9",
	KSymF10:             "F10",
	KSymF11:             "F11",
	KSymF12:             "F12",
	KSymF13:             "F13",
	KSymF14:             "F14",
	KSymF15:             "F15",
	KSymF16:             "F16",
	KSymF17:             "F17",
	KSymF18:             "F18",
	KSymF19:             "F19",
	KSymF20:             "F20",
	KSymF21:             "F21",
	KSymF22:             "F22",
	KSymF23:             "F23",
	KSymF24:             "F24",
	KSymKeypad0:         "Keypad0",
	KSymKeypad1:         "Keypad1",
	KSymKeypad2:         "Keypad2",
	KSymKeypad3:         "Keypad3",
	KSymKeypad4:         "Keypad4",
	KSymKeypad5:         "Keypad5",
	KSymKeypad6:         "Keypad6",
	KSymKeypad7:         "Keypad7",
	KSymKeypad8:         "Keypad8",
	KSymKeypad9:         "Keypad9",
	KSymKeypadMultiply:  "KeypadMultiply",
	KSymKeypadAdd:       "KeypadAdd",
	KSymKeypadSubtract:  "KeypadSubtract",
	KSymKeypadDecimal:   "KeypadDecimal",
	KSymKeypadDivide:    "KeypadDivide",
	KSymKeypadSeparator: "KeypadSeparator",
	KSymKeypadEqual:     "KeypadEqual",
	KSymKeypadEnter:     "KeypadEnter",
	KSymKeypadDelete:    "KeypadDelete",
	KSymVolumeUp:        "VolumeUp",
	KSymVolumeDown:      "VolumeDown",
	KSymMute:            "Mute",
}

func (ks KeySym) String() string {
	if ks >= 0 && ks < kSymLast {
		return keySymNames[ks]
	}
	return fmt.Sprintf("KeySym(%d)", int(ks))
}

// KeySymRune returns the rune a named key types, if any.
func KeySymRune(ks KeySym) rune {
	switch ks {
	case KSymBackspace:
		return '\b'
	case KSymTab:
		return '\t'
	case KSymReturn, KSymKeypadEnter:
		return '\r'
	case KSymEscape:
		return '\x1b'
	case KSymDelete:
		return '\x7f'

	case KSymGrave:
		return '`'
	case KSymAcute:
		return '´'
	case KSymCircumflex:
		return '^'
	case KSymTilde:
		return '~'
	case KSymCedilla:
		return '¸' // 0xb8
	case KSymBreve:
		return '˘' // 0x2d8
	case KSymCaron:
		return 'ˇ' // 0x2c7
	case KSymDiaresis:
		return '¨' // 0xa8
	case KSymRingAbove:
		return '˚' // 0x2da
	case KSymMacron:
		return '¯' // 0xaf

	case KSymKeypadMultiply:
		return '*'
	case KSymKeypadAdd:
		return '+'
	case KSymKeypadSubtract:
		return '-'
	case KSymKeypadDecimal:
		return '.'
	case KSymKeypadDivide:
		return '/'
	case KSymKeypadSeparator:
		return ','
	case KSymKeypadEqual:
		return '='
	}
	if ks >= KSymKeypad0 && ks <= KSymKeypad9 {
		return '0' + rune(ks-KSymKeypad0)
	}
	return 0
}

//----------

// Key is the logical identity of a key: a character, or a named key.
type Key struct {
	Sym  KeySym
	Rune rune
}

func CharKey(ru rune) Key {
	return Key{Rune: ru}
}

func NamedKey(ks KeySym) Key {
	return Key{Sym: ks, Rune: KeySymRune(ks)}
}

func (k Key) IsChar() bool {
	return k.Sym == KSymNone && k.Rune != 0
}

// IsPrintableChar reports a character key that is neither ascii whitespace
// nor an ascii control char.
func (k Key) IsPrintableChar() bool {
	if !k.IsChar() {
		return false
	}
	if k.Rune < unicode.MaxASCII+1 {
		switch k.Rune {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return false
		}
		return !unicode.IsControl(k.Rune)
	}
	return true
}

func (k Key) String() string {
	if k.IsChar() {
		return fmt.Sprintf("Char(%q)", k.Rune)
	}
	return k.Sym.String()
}

//----------

type KeyModifiers uint8

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModSuper
)

var keyModifiersTable = flagsutil.Table[KeyModifiers]{
	{Name: "NONE", Value: ModNone},
	{Name: "SHIFT", Value: ModShift},
	{Name: "CTRL", Value: ModCtrl},
	{Name: "ALT", Value: ModAlt},
	{Name: "SUPER", Value: ModSuper},
}

func (km KeyModifiers) Has(m KeyModifiers) bool {
	return km&m == m
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

// String uses the pipe-delimited encoding: "SHIFT|CTRL".
func (km KeyModifiers) String() string {
	return keyModifiersTable.Format(km)
}

func (km KeyModifiers) MarshalText() ([]byte, error) {
	return []byte(km.String()), nil
}

func (km *KeyModifiers) UnmarshalText(b []byte) error {
	v, err := ParseKeyModifiers(string(b))
	if err != nil {
		return err
	}
	*km = v
	return nil
}

// ParseKeyModifiers accepts names joined by "|". Unknown names are an error.
func ParseKeyModifiers(s string) (KeyModifiers, error) {
	return keyModifiersTable.Parse(s)
}
