// Package keysyms holds the X keysym tables the keyboard needs: names (as
// used in Compose files), unicode conversion, and case mapping.
package keysyms

import "github.com/BurntSushi/xgb/xproto"

// Constants from /usr/include/X11/keysymdef.h
const (
	NoSymbol   xproto.Keysym = 0
	VoidSymbol xproto.Keysym = 0xffffff

	BackSpace  xproto.Keysym = 0xff08
	Tab        xproto.Keysym = 0xff09
	Linefeed   xproto.Keysym = 0xff0a
	Clear      xproto.Keysym = 0xff0b
	Return     xproto.Keysym = 0xff0d
	Pause      xproto.Keysym = 0xff13
	ScrollLock xproto.Keysym = 0xff14
	Escape     xproto.Keysym = 0xff1b
	MultiKey   xproto.Keysym = 0xff20
	Home       xproto.Keysym = 0xff50
	Left       xproto.Keysym = 0xff51
	Up         xproto.Keysym = 0xff52
	Right      xproto.Keysym = 0xff53
	Down       xproto.Keysym = 0xff54
	Prior      xproto.Keysym = 0xff55
	Next       xproto.Keysym = 0xff56
	End        xproto.Keysym = 0xff57
	Begin      xproto.Keysym = 0xff58
	Print      xproto.Keysym = 0xff61
	Insert     xproto.Keysym = 0xff63
	Menu       xproto.Keysym = 0xff67
	Cancel     xproto.Keysym = 0xff69
	Help       xproto.Keysym = 0xff6a
	ModeSwitch xproto.Keysym = 0xff7e
	NumLock    xproto.Keysym = 0xff7f

	KPSpace     xproto.Keysym = 0xff80
	KPTab       xproto.Keysym = 0xff89
	KPEnter     xproto.Keysym = 0xff8d
	KPDelete    xproto.Keysym = 0xff9f
	KPMultiply  xproto.Keysym = 0xffaa
	KPAdd       xproto.Keysym = 0xffab
	KPSeparator xproto.Keysym = 0xffac
	KPSubtract  xproto.Keysym = 0xffad
	KPDecimal   xproto.Keysym = 0xffae
	KPDivide    xproto.Keysym = 0xffaf
	KP0         xproto.Keysym = 0xffb0
	KP9         xproto.Keysym = 0xffb9
	KPEqual     xproto.Keysym = 0xffbd

	F1  xproto.Keysym = 0xffbe
	F24 xproto.Keysym = 0xffd5
	F35 xproto.Keysym = 0xffe0

	ShiftL    xproto.Keysym = 0xffe1
	ShiftR    xproto.Keysym = 0xffe2
	ControlL  xproto.Keysym = 0xffe3
	ControlR  xproto.Keysym = 0xffe4
	CapsLock  xproto.Keysym = 0xffe5
	ShiftLock xproto.Keysym = 0xffe6
	MetaL     xproto.Keysym = 0xffe7
	MetaR     xproto.Keysym = 0xffe8
	AltL      xproto.Keysym = 0xffe9
	AltR      xproto.Keysym = 0xffea
	SuperL    xproto.Keysym = 0xffeb
	SuperR    xproto.Keysym = 0xffec
	HyperL    xproto.Keysym = 0xffed
	HyperR    xproto.Keysym = 0xffee
	Delete    xproto.Keysym = 0xffff

	ISOLock         xproto.Keysym = 0xfe01
	ISOLevel3Shift  xproto.Keysym = 0xfe03
	ISOLevel5Shift  xproto.Keysym = 0xfe11
	ISOLevel5Lock   xproto.Keysym = 0xfe13
	ISOLeftTab      xproto.Keysym = 0xfe20
	DeadGrave       xproto.Keysym = 0xfe50
	DeadAcute       xproto.Keysym = 0xfe51
	DeadCircumflex  xproto.Keysym = 0xfe52
	DeadTilde       xproto.Keysym = 0xfe53
	DeadMacron      xproto.Keysym = 0xfe54
	DeadBreve       xproto.Keysym = 0xfe55
	DeadDiaeresis   xproto.Keysym = 0xfe57
	DeadAbovering   xproto.Keysym = 0xfe58
	DeadCaron       xproto.Keysym = 0xfe5a
	DeadCedilla     xproto.Keysym = 0xfe5b
	XF86AudioLower  xproto.Keysym = 0x1008ff11
	XF86AudioMute   xproto.Keysym = 0x1008ff12
	XF86AudioRaise  xproto.Keysym = 0x1008ff13
	unicodeKeysym   xproto.Keysym = 0x01000000
	unicodeKeysymHi xproto.Keysym = 0x0110ffff
)

// IsModifier reports keysyms of modifier keys. Compose ignores them.
func IsModifier(ks xproto.Keysym) bool {
	return (ks >= ShiftL && ks <= HyperR) ||
		(ks >= ISOLock && ks <= ISOLevel5Lock) ||
		ks == ModeSwitch ||
		ks == NumLock
}

func IsUnicode(ks xproto.Keysym) bool {
	return ks >= unicodeKeysym && ks <= unicodeKeysymHi
}
