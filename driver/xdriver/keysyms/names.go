package keysyms

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Names that compose files use most. Keysyms with aliases resolve through
// here so that both spellings work.
var names = map[string]xproto.Keysym{
	"NoSymbol":   NoSymbol,
	"VoidSymbol": VoidSymbol,

	"space":        0x20,
	"exclam":       0x21,
	"quotedbl":     0x22,
	"numbersign":   0x23,
	"dollar":       0x24,
	"percent":      0x25,
	"ampersand":    0x26,
	"apostrophe":   0x27,
	"quoteright":   0x27,
	"parenleft":    0x28,
	"parenright":   0x29,
	"asterisk":     0x2a,
	"plus":         0x2b,
	"comma":        0x2c,
	"minus":        0x2d,
	"period":       0x2e,
	"slash":        0x2f,
	"colon":        0x3a,
	"semicolon":    0x3b,
	"less":         0x3c,
	"equal":        0x3d,
	"greater":      0x3e,
	"question":     0x3f,
	"at":           0x40,
	"bracketleft":  0x5b,
	"backslash":    0x5c,
	"bracketright": 0x5d,
	"asciicircum":  0x5e,
	"underscore":   0x5f,
	"grave":        0x60,
	"quoteleft":    0x60,
	"braceleft":    0x7b,
	"bar":          0x7c,
	"braceright":   0x7d,
	"asciitilde":   0x7e,

	"nobreakspace":   0xa0,
	"exclamdown":     0xa1,
	"cent":           0xa2,
	"sterling":       0xa3,
	"currency":       0xa4,
	"yen":            0xa5,
	"brokenbar":      0xa6,
	"section":        0xa7,
	"diaeresis":      0xa8,
	"copyright":      0xa9,
	"ordfeminine":    0xaa,
	"guillemotleft":  0xab,
	"guillemetleft":  0xab,
	"notsign":        0xac,
	"hyphen":         0xad,
	"registered":     0xae,
	"macron":         0xaf,
	"degree":         0xb0,
	"plusminus":      0xb1,
	"twosuperior":    0xb2,
	"threesuperior":  0xb3,
	"acute":          0xb4,
	"mu":             0xb5,
	"paragraph":      0xb6,
	"periodcentered": 0xb7,
	"cedilla":        0xb8,
	"onesuperior":    0xb9,
	"masculine":      0xba,
	"ordmasculine":   0xba,
	"guillemotright": 0xbb,
	"guillemetright": 0xbb,
	"questiondown":   0xbf,
	"multiply":       0xd7,
	"ssharp":         0xdf,
	"division":       0xf7,
	"EuroSign":       0x20ac,

	"BackSpace":     BackSpace,
	"Tab":           Tab,
	"Linefeed":      Linefeed,
	"Clear":         Clear,
	"Return":        Return,
	"Pause":         Pause,
	"Scroll_Lock":   ScrollLock,
	"Escape":        Escape,
	"Delete":        Delete,
	"Multi_key":     MultiKey,
	"Mode_switch":   ModeSwitch,
	"script_switch": ModeSwitch,
	"Num_Lock":      NumLock,
	"Home":          Home,
	"Left":          Left,
	"Up":            Up,
	"Right":         Right,
	"Down":          Down,
	"Prior":         Prior,
	"Page_Up":       Prior,
	"Next":          Next,
	"Page_Down":     Next,
	"End":           End,
	"Begin":         Begin,
	"Print":         Print,
	"Insert":        Insert,
	"Menu":          Menu,
	"Cancel":        Cancel,
	"Help":          Help,

	"KP_Space":     KPSpace,
	"KP_Tab":       KPTab,
	"KP_Enter":     KPEnter,
	"KP_Delete":    KPDelete,
	"KP_Multiply":  KPMultiply,
	"KP_Add":       KPAdd,
	"KP_Separator": KPSeparator,
	"KP_Subtract":  KPSubtract,
	"KP_Decimal":   KPDecimal,
	"KP_Divide":    KPDivide,
	"KP_Equal":     KPEqual,

	"Shift_L":    ShiftL,
	"Shift_R":    ShiftR,
	"Control_L":  ControlL,
	"Control_R":  ControlR,
	"Caps_Lock":  CapsLock,
	"Shift_Lock": ShiftLock,
	"Meta_L":     MetaL,
	"Meta_R":     MetaR,
	"Alt_L":      AltL,
	"Alt_R":      AltR,
	"Super_L":    SuperL,
	"Super_R":    SuperR,
	"Hyper_L":    HyperL,
	"Hyper_R":    HyperR,

	"ISO_Lock":         ISOLock,
	"ISO_Level3_Shift": ISOLevel3Shift,
	"ISO_Level5_Shift": ISOLevel5Shift,
	"ISO_Level5_Lock":  ISOLevel5Lock,
	"ISO_Left_Tab":     ISOLeftTab,

	"dead_grave":              0xfe50,
	"dead_acute":              0xfe51,
	"dead_circumflex":         0xfe52,
	"dead_tilde":              0xfe53,
	"dead_perispomeni":        0xfe53,
	"dead_macron":             0xfe54,
	"dead_breve":              0xfe55,
	"dead_abovedot":           0xfe56,
	"dead_diaeresis":          0xfe57,
	"dead_abovering":          0xfe58,
	"dead_doubleacute":        0xfe59,
	"dead_caron":              0xfe5a,
	"dead_cedilla":            0xfe5b,
	"dead_ogonek":             0xfe5c,
	"dead_iota":               0xfe5d,
	"dead_voiced_sound":       0xfe5e,
	"dead_semivoiced_sound":   0xfe5f,
	"dead_belowdot":           0xfe60,
	"dead_hook":               0xfe61,
	"dead_horn":               0xfe62,
	"dead_stroke":             0xfe63,
	"dead_abovecomma":         0xfe64,
	"dead_psili":              0xfe64,
	"dead_abovereversedcomma": 0xfe65,
	"dead_dasia":              0xfe65,
	"dead_doublegrave":        0xfe66,
	"dead_belowring":          0xfe67,
	"dead_belowmacron":        0xfe68,
	"dead_belowcircumflex":    0xfe69,
	"dead_belowtilde":         0xfe6a,
	"dead_belowbreve":         0xfe6b,
	"dead_belowdiaeresis":     0xfe6c,
	"dead_invertedbreve":      0xfe6d,
	"dead_belowcomma":         0xfe6e,
	"dead_currency":           0xfe6f,
	"dead_a":                  0xfe80,
	"dead_A":                  0xfe81,
	"dead_e":                  0xfe82,
	"dead_E":                  0xfe83,
	"dead_i":                  0xfe84,
	"dead_I":                  0xfe85,
	"dead_o":                  0xfe86,
	"dead_O":                  0xfe87,
	"dead_u":                  0xfe88,
	"dead_U":                  0xfe89,
	"dead_small_schwa":        0xfe8a,
	"dead_capital_schwa":      0xfe8b,
	"dead_greek":              0xfe8c,
	"dead_lowline":            0xfe90,
	"dead_aboveverticalline":  0xfe91,
	"dead_belowverticalline":  0xfe92,
	"dead_longsolidusoverlay": 0xfe93,
}

// Preferred spelling when a keysym has more than one name.
var preferred = map[xproto.Keysym]string{
	0x27:       "apostrophe",
	0x60:       "grave",
	0xab:       "guillemotleft",
	0xba:       "masculine",
	0xbb:       "guillemotright",
	Prior:      "Prior",
	Next:       "Next",
	ModeSwitch: "Mode_switch",
	MultiKey:   "Multi_key",
	0xfe53:     "dead_tilde",
	0xfe64:     "dead_abovecomma",
	0xfe65:     "dead_abovereversedcomma",
}

var (
	byName    map[string]xproto.Keysym
	byKeysym  map[xproto.Keysym]string
	namesOnce sync.Once
)

// ranges scanned from the xgbutil keysym table
var tableRanges = [][2]xproto.Keysym{
	{0x20, 0x14ff},
	{0x20a0, 0x20ff},
	{0xfe00, 0xffff},
	{0x1000100, 0x1002fff},
	{0x1008ff00, 0x1008ffff},
}

func buildNames() {
	byName = make(map[string]xproto.Keysym, 2500)
	byKeysym = make(map[xproto.Keysym]string, 2500)
	for _, r := range tableRanges {
		for ks := r[0]; ks <= r[1]; ks++ {
			s := keybind.KeysymToStr(ks)
			if s == "" {
				continue
			}
			// single-rune names are abbreviations, except for letters and digits
			if utf8.RuneCountInString(s) == 1 {
				ru, _ := utf8.DecodeRuneInString(s)
				if !isASCIIAlnum(ru) || ru != rune(ks) {
					continue
				}
			}
			if _, ok := byName[s]; !ok {
				byName[s] = ks
			}
			byKeysym[ks] = s
		}
	}
	for s, ks := range names {
		byName[s] = ks
		if _, ok := byKeysym[ks]; !ok {
			byKeysym[ks] = s
		}
	}
	for ks, s := range preferred {
		byKeysym[ks] = s
	}
}

// Lookup resolves a keysym name. Besides the symbolic names it accepts the
// "U+XXXX", "UXXXX" and "0xXXXX" forms.
func Lookup(name string) (xproto.Keysym, bool) {
	if name == "" {
		return NoSymbol, false
	}
	namesOnce.Do(buildNames)
	if ks, ok := byName[name]; ok {
		return ks, true
	}

	// unicode forms
	if len(name) >= 2 && name[0] == 'U' {
		h := strings.TrimPrefix(name[1:], "+")
		if isHexDigits(h) {
			v, err := strconv.ParseUint(h, 16, 32)
			if err != nil || v < 0x20 || (v >= 0x7f && v < 0xa0) || v > 0x10ffff {
				return NoSymbol, false
			}
			ks := FromRune(rune(v))
			return ks, ks != NoSymbol
		}
	}
	// numeric form
	if strings.HasPrefix(name, "0x") {
		if v, err := strconv.ParseUint(name[2:], 16, 32); err == nil {
			return xproto.Keysym(v), true
		}
	}
	return NoSymbol, false
}

// Name returns a printable name for a keysym.
func Name(ks xproto.Keysym) string {
	namesOnce.Do(buildNames)
	if s, ok := byKeysym[ks]; ok {
		return s
	}
	if IsUnicode(ks) {
		return fmt.Sprintf("U%04X", uint32(ks-unicodeKeysym))
	}
	return fmt.Sprintf("0x%08x", uint32(ks))
}

func isASCIIAlnum(ru rune) bool {
	return (ru >= 'a' && ru <= 'z') || (ru >= 'A' && ru <= 'Z') || (ru >= '0' && ru <= '9')
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
