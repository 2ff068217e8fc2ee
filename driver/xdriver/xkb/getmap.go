package xkb

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

type GetMapReply struct {
	DeviceID   uint8
	MinKeyCode xproto.Keycode
	MaxKeyCode xproto.Keycode
	Present    uint16

	FirstType   uint8
	Types       []KeyType
	FirstKeySym xproto.Keycode
	KeySyms     []KeySymMap

	FirstModMapKey xproto.Keycode
	ModMap         []KeyModMap
	VirtualMods    uint16
}

type KeyType struct {
	ModsMask  uint8 // effective mask: real mods plus the ones bound to vmods
	ModsMods  uint8
	ModsVmods uint16
	NumLevels uint8
	Map       []KTMapEntry
	Preserve  []ModDef
}

type KTMapEntry struct {
	Active    bool
	ModsMask  uint8
	Level     uint8
	ModsMods  uint8
	ModsVmods uint16
}

type ModDef struct {
	Mask     uint8
	RealMods uint8
	Vmods    uint16
}

type KeySymMap struct {
	KtIndex   [4]uint8
	GroupInfo uint8
	Width     uint8
	Syms      []xproto.Keysym
}

// Out of range group actions, in the high bits of GroupInfo.
const (
	GroupsWrap     = 0x00
	GroupsClamp    = 0x40
	GroupsRedirect = 0x80
)

func (m *KeySymMap) NumGroups() int {
	return int(m.GroupInfo & 0x0f)
}

func (m *KeySymMap) OutOfRange() uint8 {
	return m.GroupInfo & 0xc0
}

func (m *KeySymMap) RedirectGroup() int {
	return int(m.GroupInfo>>4) & 0x3
}

type KeyModMap struct {
	Keycode xproto.Keycode
	Mods    uint8
}

//----------

// ParseGetMapReply decodes the parts listed in the reply's present mask.
// Actions, behaviors, explicit components and vmod maps are skipped.
func ParseGetMapReply(buf []byte) (*GetMapReply, error) {
	r := reader{buf: buf}
	v := &GetMapReply{}
	v.DeviceID = r.u8(1)
	v.MinKeyCode = xproto.Keycode(r.u8(10))
	v.MaxKeyCode = xproto.Keycode(r.u8(11))
	v.Present = r.u16(12)
	v.FirstType = r.u8(14)
	nTypes := int(r.u8(15))
	v.FirstKeySym = xproto.Keycode(r.u8(17))
	nKeySyms := int(r.u8(20))
	nKeyActions := int(r.u8(24))
	totalActions := int(r.u16(22))
	totalKeyBehaviors := int(r.u8(27))
	totalKeyExplicit := int(r.u8(30))
	v.FirstModMapKey = xproto.Keycode(r.u8(31))
	totalModMapKeys := int(r.u8(33))
	totalVModMapKeys := int(r.u8(36))
	v.VirtualMods = r.u16(38)
	if r.err != nil {
		return nil, replyError("GetMap", r.err)
	}

	b := 40
	if v.Present&MapPartKeyTypes != 0 {
		v.Types = make([]KeyType, nTypes)
		for i := range v.Types {
			b = readKeyType(&r, b, &v.Types[i])
		}
	}
	if v.Present&MapPartKeySyms != 0 {
		v.KeySyms = make([]KeySymMap, nKeySyms)
		for i := range v.KeySyms {
			b = readKeySymMap(&r, b, &v.KeySyms[i])
		}
	}
	if v.Present&MapPartKeyActions != 0 {
		b += xgb.Pad(nKeyActions) // counts
		b += totalActions * 8
	}
	if v.Present&MapPartKeyBehaviors != 0 {
		b += totalKeyBehaviors * 4
	}
	if v.Present&MapPartVirtualMods != 0 {
		b += xgb.Pad(xgb.PopCount(int(v.VirtualMods)))
	}
	if v.Present&MapPartExplicitComponents != 0 {
		b += xgb.Pad(totalKeyExplicit * 2)
	}
	if v.Present&MapPartModifierMap != 0 {
		v.ModMap = make([]KeyModMap, totalModMapKeys)
		for i := range v.ModMap {
			v.ModMap[i].Keycode = xproto.Keycode(r.u8(b))
			v.ModMap[i].Mods = r.u8(b + 1)
			b += 2
		}
		b = xgb.Pad(b)
	}
	if v.Present&MapPartVirtualModMap != 0 {
		b += totalVModMapKeys * 4
	}
	r.check(0, b)
	if r.err != nil {
		return nil, replyError("GetMap", r.err)
	}
	return v, nil
}

func readKeyType(r *reader, b int, t *KeyType) int {
	t.ModsMask = r.u8(b)
	t.ModsMods = r.u8(b + 1)
	t.ModsVmods = r.u16(b + 2)
	t.NumLevels = r.u8(b + 4)
	n := int(r.u8(b + 5))
	hasPreserve := r.u8(b+6) != 0
	b += 8
	if r.err != nil {
		return b
	}

	t.Map = make([]KTMapEntry, n)
	for i := range t.Map {
		e := &t.Map[i]
		e.Active = r.u8(b) != 0
		e.ModsMask = r.u8(b + 1)
		e.Level = r.u8(b + 2)
		e.ModsMods = r.u8(b + 3)
		e.ModsVmods = r.u16(b + 4)
		b += 8
	}
	if hasPreserve {
		t.Preserve = make([]ModDef, n)
		for i := range t.Preserve {
			p := &t.Preserve[i]
			p.Mask = r.u8(b)
			p.RealMods = r.u8(b + 1)
			p.Vmods = r.u16(b + 2)
			b += 4
		}
	}
	return b
}

func readKeySymMap(r *reader, b int, m *KeySymMap) int {
	for i := range m.KtIndex {
		m.KtIndex[i] = r.u8(b + i)
	}
	m.GroupInfo = r.u8(b + 4)
	m.Width = r.u8(b + 5)
	n := int(r.u16(b + 6))
	b += 8
	if r.err != nil || !r.check(b, n*4) {
		return b
	}
	m.Syms = make([]xproto.Keysym, n)
	for i := range m.Syms {
		m.Syms[i] = xproto.Keysym(r.u32(b))
		b += 4
	}
	return b
}
