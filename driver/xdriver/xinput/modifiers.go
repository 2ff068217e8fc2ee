package xinput

import "github.com/jmigpin/xkeyboard/util/uiutil/event"

// Mod2 is usually numlock and is not reported.
var modifierNames = []struct {
	name string
	mod  event.KeyModifiers
}{
	{"Shift", event.ModShift},
	{"Control", event.ModCtrl},
	{"Mod1", event.ModAlt},
	{"Mod4", event.ModSuper},
	{"Mod3", event.ModSuper},
}

// stateModifiers returns the raw modifiers of the state.
func stateModifiers(st *State) event.KeyModifiers {
	m := event.ModNone
	for _, mn := range modifierNames {
		if st.ModNameIsActive(mn.name) {
			m |= mn.mod
		}
	}
	return m
}

// correctModifiers removes shift from character keys: the keysym of a
// printable character already has shift applied (shift+c gives 'C'). Keys
// like Return or Tab keep it.
func correctModifiers(k event.Key, raw event.KeyModifiers) event.KeyModifiers {
	if k.IsPrintableChar() {
		return raw &^ event.ModShift
	}
	return raw
}
