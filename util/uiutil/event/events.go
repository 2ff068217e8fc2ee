package event

import "fmt"

// KeyEvent is a normalized key press or release.
type KeyEvent struct {
	Key Key

	Mods    KeyModifiers // shift removed when already applied to Key
	RawMods KeyModifiers

	Keycode uint8  // physical key, as sent by the server
	Keysym  uint32 // effective keysym (composed when a sequence completed)
	Text    string // compose output, if any

	RepeatCount int
	Down        bool
}

func (ev *KeyEvent) String() string {
	s := "up"
	if ev.Down {
		s = "down"
	}
	u := fmt.Sprintf("%v %v mods=%v raw=%v kc=%d ks=0x%x",
		s, ev.Key, ev.Mods, ev.RawMods, ev.Keycode, ev.Keysym)
	if ev.Text != "" {
		u += fmt.Sprintf(" text=%q", ev.Text)
	}
	return u
}

type WindowClose struct{}
