package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyModifiersString(t *testing.T) {
	assert.Equal(t, "NONE", ModNone.String())
	assert.Equal(t, "SHIFT", ModShift.String())
	assert.Equal(t, "SHIFT|CTRL|SUPER", (ModShift | ModCtrl | ModSuper).String())
}

func TestParseKeyModifiers(t *testing.T) {
	m, err := ParseKeyModifiers("CTRL|ALT")
	require.NoError(t, err)
	assert.Equal(t, ModCtrl|ModAlt, m)

	m, err = ParseKeyModifiers("NONE")
	require.NoError(t, err)
	assert.Equal(t, ModNone, m)

	for _, s := range []string{"", "ctrl", "CTRL|HYPER", "CTRL|"} {
		_, err := ParseKeyModifiers(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestKeyModifiersText(t *testing.T) {
	var m KeyModifiers
	require.NoError(t, m.UnmarshalText([]byte("SHIFT|SUPER")))
	assert.Equal(t, ModShift|ModSuper, m)
	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SHIFT|SUPER", string(b))

	assert.Error(t, m.UnmarshalText([]byte("MOD9")))
	assert.Equal(t, ModShift|ModSuper, m) // untouched on error
}

func TestKeyIsPrintableChar(t *testing.T) {
	type pair struct {
		k Key
		v bool
	}
	pairs := []pair{
		{CharKey('C'), true},
		{CharKey('é'), true},
		{CharKey('1'), true},
		{CharKey(' '), false},
		{CharKey('\t'), false},
		{CharKey('\r'), false},
		{CharKey(0x1b), false},
		{CharKey(0x7f), false},
		{NamedKey(KSymReturn), false},
		{NamedKey(KSymF1), false},
		{NamedKey(KSymKeypad5), false},
		{Key{}, false},
	}
	for i, p := range pairs {
		assert.Equal(t, p.v, p.k.IsPrintableChar(), "entry %v: %v", i, p.k)
	}
}

func TestNamedKeyRune(t *testing.T) {
	assert.Equal(t, '\r', NamedKey(KSymReturn).Rune)
	assert.Equal(t, '7', NamedKey(KSymKeypad7).Rune)
	assert.Equal(t, rune(0), NamedKey(KSymF3).Rune)
	assert.Equal(t, "Return", KSymReturn.String())
	assert.Equal(t, "KeySym(9999)", KeySym(9999).String())
}

func TestKeyEventString(t *testing.T) {
	ev := &KeyEvent{Key: CharKey('é'), RawMods: ModShift, Keycode: 26, Keysym: 0xe9, Text: "é", Down: true}
	assert.Equal(t, `down Char('é') mods=NONE raw=SHIFT kc=26 ks=0xe9 text="é"`, ev.String())
}
