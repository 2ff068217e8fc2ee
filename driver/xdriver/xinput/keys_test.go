package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/stretchr/testify/assert"
)

func TestKeysymToKey(t *testing.T) {
	type pair struct {
		ks  xproto.Keysym
		key event.Key
	}
	pairs := []pair{
		{0x61, event.CharKey('a')},
		{0x41, event.CharKey('A')},
		{0x20, event.CharKey(' ')},
		{0xe9, event.CharKey('é')},
		{0x7c1, event.CharKey('Α')}, // Greek_ALPHA
		{0x10020ac, event.CharKey('€')},
		{0xff0d, event.Key{Sym: event.KSymReturn, Rune: '\r'}},
		{0xff09, event.Key{Sym: event.KSymTab, Rune: '\t'}},
		{0xfe20, event.NamedKey(event.KSymTabLeft)},
		{0xffc9, event.NamedKey(event.KSymF12)},
		{0xffd5, event.NamedKey(event.KSymF24)},
		{0xffb5, event.Key{Sym: event.KSymKeypad5, Rune: '5'}},
		{0xffab, event.Key{Sym: event.KSymKeypadAdd, Rune: '+'}},
		{0xff95, event.NamedKey(event.KSymHome)},
		{0xfe51, event.Key{Sym: event.KSymAcute, Rune: '´'}},
		{0xfe03, event.NamedKey(event.KSymAltGr)},
		{0x1008ff12, event.NamedKey(event.KSymMute)},
	}
	for _, p := range pairs {
		key, ok := keysymToKey(p.ks)
		if assert.True(t, ok, "0x%x", p.ks) {
			assert.Equal(t, p.key, key, "0x%x", p.ks)
		}
	}

	for _, ks := range []xproto.Keysym{0, 0xff7e, 0xffd6, 0x1008ff99} {
		_, ok := keysymToKey(ks)
		assert.False(t, ok, "0x%x", ks)
	}
}

func TestCorrectModifiers(t *testing.T) {
	type pair struct {
		key      event.Key
		raw, cor event.KeyModifiers
	}
	sc := event.ModShift | event.ModCtrl
	pairs := []pair{
		{event.CharKey('C'), event.ModShift, event.ModNone},
		{event.CharKey('!'), sc, event.ModCtrl},
		{event.CharKey('é'), event.ModShift, event.ModNone},
		{event.CharKey(' '), event.ModShift, event.ModShift},
		{event.CharKey('\t'), event.ModShift, event.ModShift},
		{event.CharKey(0x7f), event.ModShift, event.ModShift},
		{event.NamedKey(event.KSymReturn), sc, sc},
		{event.NamedKey(event.KSymF1), event.ModShift, event.ModShift},
		{event.NamedKey(event.KSymKeypad1), event.ModShift, event.ModShift},
	}
	for _, p := range pairs {
		assert.Equal(t, p.cor, correctModifiers(p.key, p.raw), "%v", p.key)
	}
}
