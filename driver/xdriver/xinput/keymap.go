package xinput

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xkb"
	"github.com/pkg/errors"
)

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// Each key has up to 4 groups (layouts), each group a key type that picks a
// shift level from the active modifiers.

// Map parts fetched to build a layout.
const layoutMapParts = xkb.MapPartKeyTypes | xkb.MapPartKeySyms | xkb.MapPartModifierMap

// Map parts that trigger a MapNotify.
const selectMapParts = layoutMapParts |
	xkb.MapPartExplicitComponents |
	xkb.MapPartKeyActions |
	xkb.MapPartKeyBehaviors |
	xkb.MapPartVirtualMods |
	xkb.MapPartVirtualModMap

// Layout is a compiled keyboard mapping. It is immutable: a layout change
// builds a new one.
type Layout struct {
	MinKeycode xproto.Keycode
	MaxKeycode xproto.Keycode

	firstKey  xproto.Keycode
	keys      []xkb.KeySymMap
	types     []xkb.KeyType
	numGroups int
	modMap    map[xproto.Keycode]uint8
	aliases   map[string]uint8 // modifier alias name -> real mods
}

func NewLayout(r *xkb.GetMapReply) (*Layout, error) {
	if r == nil {
		return nil, errors.New("layout: no map reply")
	}
	if len(r.Types) == 0 || len(r.KeySyms) == 0 {
		return nil, errors.New("layout: map without key types or key syms")
	}
	if r.MinKeyCode > r.MaxKeyCode {
		return nil, errors.Errorf("layout: bad keycode range: %d > %d", r.MinKeyCode, r.MaxKeyCode)
	}
	if int(r.FirstType) != 0 {
		return nil, errors.Errorf("layout: partial key types, first=%d", r.FirstType)
	}

	for i := range r.Types {
		t := &r.Types[i]
		for _, e := range t.Map {
			if e.Level >= t.NumLevels {
				return nil, errors.Errorf("layout: key type %d: level %d out of %d", i, e.Level, t.NumLevels)
			}
		}
	}

	l := &Layout{
		MinKeycode: r.MinKeyCode,
		MaxKeycode: r.MaxKeyCode,
		firstKey:   r.FirstKeySym,
		keys:       r.KeySyms,
		types:      r.Types,
		modMap:     map[xproto.Keycode]uint8{},
	}
	for i := range l.keys {
		k := &l.keys[i]
		kc := int(l.firstKey) + i
		ng := k.NumGroups()
		if ng > len(k.KtIndex) {
			return nil, errors.Errorf("layout: key %d: %d groups", kc, ng)
		}
		if len(k.Syms) != ng*int(k.Width) {
			return nil, errors.Errorf("layout: key %d: %d syms for %d groups of width %d", kc, len(k.Syms), ng, k.Width)
		}
		for g := 0; g < ng; g++ {
			if int(k.KtIndex[g]) >= len(l.types) {
				return nil, errors.Errorf("layout: key %d: group %d: bad key type %d", kc, g, k.KtIndex[g])
			}
		}
		if ng > l.numGroups {
			l.numGroups = ng
		}
	}
	for _, m := range r.ModMap {
		l.modMap[m.Keycode] |= m.Mods
	}
	l.aliases = l.detectAliases()
	return l, nil
}

//----------

func (l *Layout) NumGroups() int {
	return l.numGroups
}

func (l *Layout) key(kc xproto.Keycode) *xkb.KeySymMap {
	i := int(kc) - int(l.firstKey)
	if kc < l.MinKeycode || kc > l.MaxKeycode || i < 0 || i >= len(l.keys) {
		return nil
	}
	return &l.keys[i]
}

// keyGroup brings an effective group into the range of the key's groups.
func keyGroup(k *xkb.KeySymMap, group int) (int, bool) {
	n := k.NumGroups()
	if n == 0 {
		return 0, false
	}
	if group >= 0 && group < n {
		return group, true
	}
	switch k.OutOfRange() {
	case xkb.GroupsClamp:
		if group < 0 {
			return 0, true
		}
		return n - 1, true
	case xkb.GroupsRedirect:
		g := k.RedirectGroup()
		if g >= n {
			g = 0
		}
		return g, true
	default:
		return wrapGroup(group, n), true
	}
}

func wrapGroup(group, n int) int {
	if n <= 0 {
		return 0
	}
	g := group % n
	if g < 0 {
		g += n
	}
	return g
}

// level returns the shift level selected by the mods, and the mods used up
// in selecting it.
func (l *Layout) level(k *xkb.KeySymMap, group int, mods uint8) (int, uint8) {
	t := &l.types[k.KtIndex[group]]
	active := mods & t.ModsMask
	for i, e := range t.Map {
		if e.Active && e.ModsMask == active {
			consumed := t.ModsMask
			if i < len(t.Preserve) {
				consumed &^= t.Preserve[i].Mask
			}
			return int(e.Level), consumed
		}
	}
	return 0, t.ModsMask
}

// Keysym looks up a key at a group and level, with no modifier logic.
func (l *Layout) Keysym(kc xproto.Keycode, group, level int) xproto.Keysym {
	k := l.key(kc)
	if k == nil {
		return keysyms.NoSymbol
	}
	g, ok := keyGroup(k, group)
	if !ok || level < 0 || level >= int(k.Width) {
		return keysyms.NoSymbol
	}
	return k.Syms[g*int(k.Width)+level]
}

// KeycodeKeysyms returns all keysyms of a key, group by group.
func (l *Layout) KeycodeKeysyms(kc xproto.Keycode) []xproto.Keysym {
	k := l.key(kc)
	if k == nil {
		return nil
	}
	return k.Syms
}

// KeycodeMods returns the real modifiers a key is bound to.
func (l *Layout) KeycodeMods(kc xproto.Keycode) uint8 {
	return l.modMap[kc]
}

//----------

// Real modifier names, as the server numbers them.
var realModNames = [...]string{"Shift", "Lock", "Control", "Mod1", "Mod2", "Mod3", "Mod4", "Mod5"}

// X11: keysyms to detect which real modifier an alias is bound to
var aliasKeysyms = []struct {
	name string
	kss  []xproto.Keysym
}{
	{"NumLock", []xproto.Keysym{keysyms.NumLock}},
	{"Alt", []xproto.Keysym{keysyms.AltL, keysyms.AltR}},
	{"LevelThree", []xproto.Keysym{keysyms.ISOLevel3Shift}},
	{"LevelFive", []xproto.Keysym{keysyms.ISOLevel5Shift}},
	{"Super", []xproto.Keysym{keysyms.SuperL, keysyms.SuperR}},
	{"Meta", []xproto.Keysym{keysyms.MetaL, keysyms.MetaR}},
	{"Hyper", []xproto.Keysym{keysyms.HyperL, keysyms.HyperR}},
}

func (l *Layout) detectAliases() map[string]uint8 {
	aliases := map[string]uint8{}
	for kc, mods := range l.modMap {
		// Shift, Lock and Control are fixed
		mods &^= 0x7
		if mods == 0 {
			continue
		}
		for _, ks := range l.KeycodeKeysyms(kc) {
			for _, a := range aliasKeysyms {
				for _, ks2 := range a.kss {
					if ks == ks2 {
						aliases[a.name] |= mods
					}
				}
			}
		}
	}
	return aliases
}

// ModMask returns the real modifiers of a modifier name. Unknown names have
// an empty mask.
func (l *Layout) ModMask(name string) (uint8, bool) {
	for i, n := range realModNames {
		if n == name {
			return 1 << i, true
		}
	}
	m, ok := l.aliases[name]
	return m, ok && m != 0
}

// ModMaskString formats real modifiers for logs: "shift-mod2".
func ModMaskString(mods uint8) string {
	if mods == 0 {
		return "none"
	}
	return keybind.ModifierString(uint16(mods))
}

func (l *Layout) String() string {
	return fmt.Sprintf("Layout{keycodes: %d-%d, keys: %d, types: %d, groups: %d}",
		l.MinKeycode, l.MaxKeycode, len(l.keys), len(l.types), l.numGroups)
}

//----------

// KeymapState pairs a layout with the state derived from it. The pair is
// replaced as one value, never one half at a time.
type KeymapState struct {
	Layout *Layout
	State  *State
}

func NewKeymapState(m *xkb.GetMapReply, s *xkb.GetStateReply) (KeymapState, error) {
	l, err := NewLayout(m)
	if err != nil {
		return KeymapState{}, err
	}
	st, err := NewState(l, s)
	if err != nil {
		return KeymapState{}, err
	}
	return KeymapState{Layout: l, State: st}, nil
}
