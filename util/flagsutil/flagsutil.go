// Package flagsutil encodes bitsets as pipe-delimited flag names.
//
//	"SHIFT|CTRL"
//
// Parsing is strict: every token must name a known flag.
package flagsutil

import (
	"fmt"
	"strings"
)

type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Flag[T Bits] struct {
	Name  string
	Value T
}

// Table is ordered; Format emits names in table order. A flag with a zero
// value names the empty set.
type Table[T Bits] []Flag[T]

func (t Table[T]) Parse(s string) (T, error) {
	var v T
	for _, tok := range strings.Split(s, "|") {
		tok = strings.TrimSpace(tok)
		f, ok := t.lookup(tok)
		if !ok {
			return 0, fmt.Errorf("invalid flag %q in %q, valid: %v", tok, s, t.Names())
		}
		v |= f.Value
	}
	return v, nil
}

func (t Table[T]) Format(v T) string {
	if v == 0 {
		for _, f := range t {
			if f.Value == 0 {
				return f.Name
			}
		}
		return ""
	}
	u := []string{}
	rest := v
	for _, f := range t {
		if f.Value == 0 {
			continue
		}
		if v&f.Value == f.Value {
			u = append(u, f.Name)
			rest &^= f.Value
		}
	}
	if rest != 0 {
		u = append(u, fmt.Sprintf("0x%x", uint64(rest)))
	}
	return strings.Join(u, "|")
}

func (t Table[T]) Names() []string {
	u := make([]string, 0, len(t))
	for _, f := range t {
		u = append(u, f.Name)
	}
	return u
}

func (t Table[T]) lookup(name string) (Flag[T], bool) {
	if name == "" {
		return Flag[T]{}, false
	}
	for _, f := range t {
		if f.Name == name {
			return f, true
		}
	}
	return Flag[T]{}, false
}
