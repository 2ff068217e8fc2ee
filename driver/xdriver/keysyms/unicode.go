package keysyms

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"golang.org/x/text/encoding/charmap"
)

// Legacy keysym sets encode "charset<<8 | byte". Most of them follow an
// 8-bit charset byte for byte.
type legacySet struct {
	lo, hi xproto.Keysym
	cm     *charmap.Charmap
}

var legacySets = []legacySet{
	{0x1a1, 0x1ff, charmap.ISO8859_2},  // latin 2
	{0x2a1, 0x2fe, charmap.ISO8859_3},  // latin 3
	{0x3a2, 0x3fe, charmap.ISO8859_4},  // latin 4
	{0x5ac, 0x5f2, charmap.ISO8859_6},  // arabic
	{0x6c0, 0x6ff, charmap.KOI8U},      // cyrillic
	{0x7c1, 0x7f9, charmap.ISO8859_7},  // greek letters
	{0xcdf, 0xcfa, charmap.ISO8859_8},  // hebrew
	{0xda1, 0xdf9, charmap.Windows874}, // thai (tis-620)
}

// where the keysym layout departs from the charset
var legacyOverrides = map[xproto.Keysym]rune{
	0x6a3: 'ё', 0x6b3: 'Ё',
	0x6a4: 'є', 0x6b4: 'Є',
	0x6a6: 'і', 0x6b6: 'І',
	0x6a7: 'ї', 0x6b7: 'Ї',
	0x6ad: 'ґ', 0x6bd: 'Ґ',
	0x7d2: 'Σ',
	0x7f2: 'σ',
	0x7f3: 'ς',
	0x13bc: 'Œ',
	0x13bd: 'œ',
	0x13be: 'Ÿ',
	0x20ac: '€',
}

// ToRune returns the character a keysym types, or 0.
func ToRune(ks xproto.Keysym) rune {
	switch {
	case ks == NoSymbol:
		return 0
	case (ks >= 0x20 && ks <= 0x7e) || (ks >= 0xa0 && ks <= 0xff):
		return rune(ks)
	case IsUnicode(ks):
		return rune(ks - unicodeKeysym)
	}

	switch ks {
	case BackSpace, Tab, Linefeed, Clear, Return, Escape:
		return rune(ks & 0x7f)
	case Delete:
		return 0x7f
	case KPSpace:
		return ' '
	case KPTab:
		return '\t'
	case KPEnter:
		return '\r'
	case KPEqual:
		return '='
	}
	if ks >= KPMultiply && ks <= KP9 {
		return rune(ks & 0x7f)
	}

	if ru, ok := legacyOverrides[ks]; ok {
		return ru
	}
	if ls, ok := findLegacySet(ks); ok {
		ru := ls.cm.DecodeByte(byte(ks & 0xff))
		if ru == unicode.ReplacementChar {
			return 0
		}
		return ru
	}
	return 0
}

// FromRune returns the keysym for a character. Latin-1 characters keep their
// legacy keysym, the rest use the unicode keysym range.
func FromRune(ru rune) xproto.Keysym {
	switch {
	case ru <= 0 || ru > unicode.MaxRune:
		return NoSymbol
	case (ru >= 0x20 && ru <= 0x7e) || (ru >= 0xa0 && ru <= 0xff):
		return xproto.Keysym(ru)
	}
	switch ru {
	case '\b':
		return BackSpace
	case '\t':
		return Tab
	case '\n', '\r':
		return Return
	case 0x1b:
		return Escape
	case 0x7f:
		return Delete
	}
	if ru < 0x20 || (ru >= 0x80 && ru < 0xa0) {
		return NoSymbol
	}
	return unicodeKeysym | xproto.Keysym(ru)
}

// ToUpper maps a keysym to its uppercase counterpart, keeping it in the same
// encoding when possible.
func ToUpper(ks xproto.Keysym) xproto.Keysym {
	ru := ToRune(ks)
	if ru == 0 {
		return ks
	}
	up := unicode.ToUpper(ru)
	if up == ru {
		return ks
	}
	switch {
	case ks <= 0xff && up <= 0xff:
		return xproto.Keysym(up)
	case IsUnicode(ks):
		return unicodeKeysym | xproto.Keysym(up)
	default:
		for k, ru2 := range legacyOverrides {
			if ru2 == up {
				return k
			}
		}
		if ls, ok := findLegacySet(ks); ok {
			if b, ok := ls.cm.EncodeRune(up); ok {
				ks2 := ks&^0xff | xproto.Keysym(b)
				if ks2 >= ls.lo && ks2 <= ls.hi {
					return ks2
				}
			}
		}
	}
	return FromRune(up)
}

func findLegacySet(ks xproto.Keysym) (legacySet, bool) {
	for _, ls := range legacySets {
		if ks >= ls.lo && ks <= ls.hi {
			return ls, true
		}
	}
	return legacySet{}, false
}
