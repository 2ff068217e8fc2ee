// Package compose implements X11 compose sequences: a table loaded from
// Compose files and a state that is fed one keysym per key press.
package compose

import (
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/pkg/errors"
)

const (
	MaxSequenceLen  = 10
	maxIncludeDepth = 5
)

var ErrNoComposeTable = errors.New("compose: no compose table")

// Table is a trie over keysyms. Internal nodes continue a sequence, leaves
// hold a result.
type Table struct {
	Locale string
	Path   string // main file, empty when built from a reader

	root        node
	productions int
}

type node struct {
	next map[xproto.Keysym]*node

	// leaf
	utf8   string
	keysym xproto.Keysym
}

func (n *node) isInternal() bool {
	return len(n.next) > 0
}

func NewTable(locale string) *Table {
	return &Table{Locale: locale}
}

// Len returns the number of sequences in the table.
func (t *Table) Len() int {
	return t.productions
}

// Add inserts a sequence. A sequence that is a prefix of an existing longer
// one is rejected. A longer sequence replaces an existing shorter prefix.
func (t *Table) Add(seq []xproto.Keysym, s string, ks xproto.Keysym) error {
	switch {
	case len(seq) == 0:
		return errors.New("empty sequence")
	case len(seq) > MaxSequenceLen:
		return errors.Errorf("sequence too long: %d > %d", len(seq), MaxSequenceLen)
	case s == "" && ks == keysyms.NoSymbol:
		return errors.New("sequence without result")
	case !utf8.ValidString(s):
		return errors.New("result string is not valid utf8")
	}

	n := &t.root
	for i, k := range seq {
		last := i == len(seq)-1
		child, ok := n.next[k]
		if !ok {
			if n.next == nil {
				if n != &t.root {
					// n was a leaf: the new sequence overrides it
					t.productions--
					n.utf8, n.keysym = "", keysyms.NoSymbol
				}
				n.next = map[xproto.Keysym]*node{}
			}
			child = &node{}
			if last {
				t.productions++
			} else {
				child.next = map[xproto.Keysym]*node{}
			}
			n.next[k] = child
		} else if last {
			if child.isInternal() {
				return errors.New("a longer sequence with this prefix already exists")
			}
			// same sequence defined again: the last one wins
		}
		n = child
	}
	n.utf8, n.keysym = s, ks
	return nil
}

// Lookup returns the result of a full sequence.
func (t *Table) Lookup(seq []xproto.Keysym) (string, xproto.Keysym, bool) {
	n := &t.root
	for _, k := range seq {
		child, ok := n.next[k]
		if !ok {
			return "", keysyms.NoSymbol, false
		}
		n = child
	}
	if n == &t.root || n.isInternal() {
		return "", keysyms.NoSymbol, false
	}
	return n.utf8, n.keysym, true
}

// Walk calls fn for every sequence in the table.
func (t *Table) Walk(fn func(seq []xproto.Keysym, s string, ks xproto.Keysym)) {
	var walk func(n *node, seq []xproto.Keysym)
	walk = func(n *node, seq []xproto.Keysym) {
		if !n.isInternal() {
			if n != &t.root {
				fn(seq, n.utf8, n.keysym)
			}
			return
		}
		for k, c := range n.next {
			walk(c, append(seq[:len(seq):len(seq)], k))
		}
	}
	walk(&t.root, nil)
}
