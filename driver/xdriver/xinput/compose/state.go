package compose

import (
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
)

type Status int

const (
	Nothing Status = iota
	Composing
	Composed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Nothing:
		return "nothing"
	case Composing:
		return "composing"
	case Composed:
		return "composed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

type FeedResult int

const (
	FeedIgnored FeedResult = iota
	FeedAccepted
)

//----------

// State tracks the progress of one sequence. After Composed or Cancelled the
// next feed starts a new sequence.
type State struct {
	table     *Table
	prev, cur *node // nil is the idle position
}

func NewState(t *Table) *State {
	return &State{table: t}
}

func (st *State) Table() *Table {
	return st.table
}

// Feed advances the state with the keysym of a key press. Modifier keysyms
// are ignored so that they can be pressed inside a sequence.
func (st *State) Feed(ks xproto.Keysym) FeedResult {
	if keysyms.IsModifier(ks) {
		return FeedIgnored
	}
	from := &st.table.root
	if st.cur != nil && st.cur.isInternal() {
		from = st.cur
	}
	st.prev = st.cur
	st.cur = from.next[ks] // nil if no match
	return FeedAccepted
}

func (st *State) Reset() {
	st.prev, st.cur = nil, nil
}

func (st *State) Status() Status {
	if st.cur == nil {
		if st.prev != nil && st.prev.isInternal() {
			return Cancelled
		}
		return Nothing
	}
	if st.cur.isInternal() {
		return Composing
	}
	return Composed
}

// Utf8 returns the result string when the status is Composed.
func (st *State) Utf8() string {
	if st.Status() != Composed {
		return ""
	}
	return st.cur.utf8
}

// Keysym returns the result keysym when the status is Composed. A result
// defined only by a one character string gets that character's keysym.
func (st *State) Keysym() xproto.Keysym {
	if st.Status() != Composed {
		return keysyms.NoSymbol
	}
	if st.cur.keysym != keysyms.NoSymbol {
		return st.cur.keysym
	}
	if ru, size := utf8.DecodeRuneInString(st.cur.utf8); size > 0 && size == len(st.cur.utf8) {
		return keysyms.FromRune(ru)
	}
	return keysyms.NoSymbol
}
