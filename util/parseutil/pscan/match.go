package pscan

import (
	"fmt"
	"unicode"
)

type Match struct {
	sc *Scanner
	W  *Wrap
}

func (m *Match) init(sc *Scanner) {
	m.sc = sc
	m.W = sc.W
}

//----------

func (m *Match) And(pos int, fns ...MFn) (int, error) {
	for _, fn := range fns {
		if p2, err := fn(pos); err != nil {
			return p2, err
		} else {
			pos = p2
		}
	}
	return pos, nil
}

func (m *Match) Or(pos int, fns ...MFn) (int, error) {
	err0 := (error)(nil)
	p0 := -1
	for _, fn := range fns {
		if p2, err := fn(pos); err != nil {
			if errorIsFatal(err) {
				return p2, err
			}
			// keep furthest error
			if err0 == nil || p2 > p0 {
				p0 = p2
				err0 = err
			}
		} else {
			return p2, nil
		}
	}
	return p0, err0
}

func (m *Match) Optional(pos int, fn MFn) (int, error) {
	if p2, err := fn(pos); err != nil {
		if errorIsFatal(err) {
			return p2, err
		}
		return pos, nil
	} else {
		return p2, nil
	}
}

//----------

func (m *Match) Byte(pos int, b byte) (int, error) {
	b2, p2, err := m.sc.ReadByte(pos)
	if err != nil {
		return p2, err
	}
	if b2 != b {
		return pos, NoMatchErr // position before reading
	}
	return p2, nil
}
func (m *Match) ByteFn(pos int, fn func(byte) bool) (int, error) {
	b, p2, err := m.sc.ReadByte(pos)
	if err != nil {
		return p2, err
	}
	if !fn(b) {
		return pos, NoMatchErr // position before reading
	}
	return p2, nil
}

// one or more
func (m *Match) ByteFnLoop(pos int, fn func(byte) bool) (int, error) {
	return m.Loop(pos, m.W.ByteFn(fn))
}

func (m *Match) OneByte(pos int) (int, error) {
	_, p2, err := m.sc.ReadByte(pos)
	return p2, err
}

func (m *Match) Sequence(pos int, seq string) (int, error) {
	for i := 0; i < len(seq); i++ {
		if p2, err := m.Byte(pos, seq[i]); err != nil {
			return p2, err
		} else {
			pos = p2
		}
	}
	return pos, nil
}

//----------

func (m *Match) Rune(pos int, ru rune) (int, error) {
	ru2, p2, err := m.sc.ReadRune(pos)
	if err != nil {
		return p2, err
	}
	if ru2 != ru {
		return pos, NoMatchErr // position before reading
	}
	return p2, nil
}

func (m *Match) RuneFn(pos int, fn func(rune) bool) (int, error) {
	ru, p2, err := m.sc.ReadRune(pos)
	if err != nil {
		return p2, err
	}
	if !fn(ru) {
		return pos, NoMatchErr // position before reading
	}
	return p2, nil
}

func (m *Match) OneRune(pos int) (int, error) {
	_, p2, err := m.sc.ReadRune(pos)
	return p2, err
}

//----------

// Runs fn at least min times and at most max times (max<=-1 means no upper
// limit), stopping at the first failure once min is reached.
func (m *Match) LimitedLoop(pos int, min, max int, fn MFn) (int, error) {
	for i := 0; max < 0 || i < max; i++ {
		p2, err := fn(pos)
		if err != nil {
			if errorIsFatal(err) {
				return p2, err
			}
			if i >= min {
				return pos, nil // last good fn() position
			}
			return p2, err
		}
		pos = p2
	}
	return pos, nil
}

// one or more
func (m *Match) Loop(pos int, fn MFn) (int, error) {
	return m.LimitedLoop(pos, 1, -1, fn)
}

// optional loop: zero or more
func (m *Match) OptLoop(pos int, fn MFn) (int, error) {
	return m.LimitedLoop(pos, 0, -1, fn)
}

//---------- NOTE: not so "generic" util funcs (more specific)

func (m *Match) Spaces(pos int, includeNL bool, escape rune) (int, error) {
	valid := func(ru rune) bool {
		return unicode.IsSpace(ru) && (includeNL || ru != '\n')
	}
	return m.Loop(pos, m.W.Or(
		// escapes spaces // allow any space to be escaped
		m.W.And(
			m.W.StaticTrue(escape != 0),
			m.W.Rune(escape),
			m.W.RuneFn(unicode.IsSpace),
		),

		m.W.RuneFn(valid),
	))
}

// zero or more spaces, never newlines
func (m *Match) OptSpaces(pos int) (int, error) {
	return m.Optional(pos, m.W.Spaces(false, 0))
}

func (m *Match) EscapeAny(pos int, escape rune) (int, error) {
	if escape == 0 {
		return pos, NoMatchErr
	}
	return m.And(pos,
		m.W.Rune(escape),
		m.OneRune,
	)
}

func (m *Match) ToNLOrErr(pos int, includeNL bool, esc rune) (int, error) {
	done := false
	valid := func(ru rune) bool {
		isNL := ru == '\n'
		if includeNL && isNL {
			done = true
			return true
		}
		return !isNL
	}
	return m.OptLoop(pos, m.W.And(
		m.W.PtrFalse(&done),
		m.W.Or(
			m.W.EscapeAny(esc),
			m.W.RuneFn(valid),
		)),
	)
}

//---------- NOTE: these util funcs don't affect the position

func (m *Match) MustErr(pos int, fn MFn) (int, error) {
	if _, err := fn(pos); err != nil {
		return pos, nil
	}
	return pos, NoMatchErr
}
func (m *Match) PtrFalse(pos int, v *bool) (int, error) {
	if !*v {
		return pos, nil
	}
	return pos, NoMatchErr
}
func (m *Match) StaticTrue(pos int, v bool) (int, error) {
	if v {
		return pos, nil
	}
	return pos, NoMatchErr
}

func (m *Match) Eof(pos int) (int, error) {
	if _, _, err := m.sc.ReadByte(pos); err == EOF {
		return pos, nil
	}
	return pos, NoMatchErr
}

//---------- NOTE: value helpers

func (m *Match) OnValue(pos int, fn VFn, cb func(any)) (int, error) {
	if v, p2, err := fn(pos); err != nil {
		return p2, err
	} else {
		cb(v)
		return p2, nil
	}
}
func (m *Match) OnValue2(pos int, fn VFn, cb func(any) error) (int, error) {
	if v, p2, err := fn(pos); err != nil {
		return p2, err
	} else {
		err2 := cb(v)
		return p2, err2
	}
}
func (m *Match) BytesValue(pos int, fn MFn) (any, int, error) {
	if p2, err := fn(pos); err != nil {
		return nil, p2, err
	} else {
		src := m.sc.SrcFromTo(pos, p2)
		return src, p2, nil
	}
}
func (m *Match) StringValue(pos int, fn MFn) (any, int, error) {
	if v, p2, err := m.BytesValue(pos, fn); err != nil {
		return nil, p2, err
	} else {
		return string(v.([]byte)), p2, nil
	}
}

//---------- NOTE: error helpers

// Fails with a fatal error when fn does not match.
func (m *Match) FatalOnError(pos int, s string, fn MFn) (int, error) {
	if p2, err := fn(pos); err != nil {
		return p2, m.sc.EnsureFatalError(fmt.Errorf("%s: %w", s, err))
	} else {
		return p2, nil
	}
}
