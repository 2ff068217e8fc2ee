package keysyms

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	type pair struct {
		name string
		ks   xproto.Keysym
	}
	pairs := []pair{
		{"a", 0x61},
		{"Z", 0x5a},
		{"5", 0x35},
		{"apostrophe", 0x27},
		{"quoteright", 0x27},
		{"space", 0x20},
		{"asciitilde", 0x7e},
		{"Multi_key", MultiKey},
		{"dead_acute", 0xfe51},
		{"dead_tilde", 0xfe53},
		{"dead_perispomeni", 0xfe53},
		{"eacute", 0xe9},
		{"EuroSign", 0x20ac},
		{"Greek_alpha", 0x7e1},
		{"KP_Add", KPAdd},
		{"Shift_L", ShiftL},
		{"U20AC", 0x10020ac},
		{"U+00e9", 0xe9},
		{"0x1234", 0x1234},
	}
	for _, p := range pairs {
		ks, ok := Lookup(p.name)
		if assert.True(t, ok, p.name) {
			assert.Equal(t, p.ks, ks, p.name)
		}
	}

	for _, name := range []string{"", "nosuchkey", "U", "U0009", "U110000", "UXYZ", "0xzz"} {
		_, ok := Lookup(name)
		assert.False(t, ok, "%q", name)
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "a", Name(0x61))
	assert.Equal(t, "apostrophe", Name(0x27))
	assert.Equal(t, "dead_tilde", Name(0xfe53))
	assert.Equal(t, "Multi_key", Name(MultiKey))
	assert.Equal(t, "U1F600", Name(0x101f600))
	assert.Equal(t, "0x00abcdef", Name(0xabcdef))
}
