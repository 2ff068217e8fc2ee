package xinput

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/pkg/errors"
)

const lockMask = uint8(xproto.ModMaskLock)

// State tracks the modifiers and group of a keyboard on top of a layout.
type State struct {
	layout *Layout

	baseMods    uint8
	latchedMods uint8
	lockedMods  uint8

	baseGroup    int
	latchedGroup int
	lockedGroup  int

	// derived
	mods  uint8
	group int
}

func NewState(l *Layout, r *xkb.GetStateReply) (*State, error) {
	if l == nil {
		return nil, errors.New("state: no layout")
	}
	if r == nil {
		return nil, errors.New("state: no state reply")
	}
	st := &State{layout: l}
	st.UpdateMask(r.BaseMods, r.LatchedMods, r.LockedMods,
		r.BaseGroup, r.LatchedGroup, r.LockedGroup)
	return st, nil
}

func (st *State) Layout() *Layout {
	return st.layout
}

// UpdateMask sets the components as reported by the server. The layout is
// not touched.
func (st *State) UpdateMask(baseMods, latchedMods, lockedMods uint8, baseGroup, latchedGroup int16, lockedGroup uint8) {
	st.baseMods = baseMods
	st.latchedMods = latchedMods
	st.lockedMods = lockedMods
	st.baseGroup = int(baseGroup)
	st.latchedGroup = int(latchedGroup)

	n := st.layout.NumGroups()
	st.lockedGroup = wrapGroup(int(lockedGroup), n)
	st.mods = baseMods | latchedMods | lockedMods
	st.group = wrapGroup(st.baseGroup+st.latchedGroup+st.lockedGroup, n)
}

// Mods returns the effective real modifiers.
func (st *State) Mods() uint8 {
	return st.mods
}

// Group returns the effective group.
func (st *State) Group() int {
	return st.group
}

// ModNameIsActive reports whether a modifier is in the effective mods. Names
// that are not known are inactive.
func (st *State) ModNameIsActive(name string) bool {
	m, ok := st.layout.ModMask(name)
	if !ok {
		return false
	}
	return st.mods&m != 0
}

// KeyGetOneSym resolves a keycode with the current group and mods. Keys with
// an active and unconsumed Lock get the uppercase keysym.
func (st *State) KeyGetOneSym(kc xproto.Keycode) xproto.Keysym {
	k := st.layout.key(kc)
	if k == nil {
		return keysyms.NoSymbol
	}
	g, ok := keyGroup(k, st.group)
	if !ok {
		return keysyms.NoSymbol
	}
	level, consumed := st.layout.level(k, g, st.mods)
	if level >= int(k.Width) {
		return keysyms.NoSymbol
	}
	ks := k.Syms[g*int(k.Width)+level]
	if st.mods&lockMask != 0 && consumed&lockMask == 0 {
		ks = keysyms.ToUpper(ks)
	}
	return ks
}

func (st *State) String() string {
	return fmt.Sprintf("State{mods: %v (base: %v, latched: %v, locked: %v), group: %d (base: %d, latched: %d, locked: %d)}",
		ModMaskString(st.mods),
		ModMaskString(st.baseMods),
		ModMaskString(st.latchedMods),
		ModMaskString(st.lockedMods),
		st.group, st.baseGroup, st.latchedGroup, st.lockedGroup)
}
