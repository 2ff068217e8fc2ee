package pscan // position scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Match functions take a position and return the position after the match.
// On failure they return an error and the position where it happened.
type Scanner struct {
	src []byte
	M   *Match
	W   *Wrap
}

func NewScanner() *Scanner {
	sc := &Scanner{}
	sc.M = &Match{}
	sc.W = &Wrap{}
	sc.M.init(sc)
	sc.W.init(sc)
	return sc
}

//----------

func (sc *Scanner) SetSrc(src []byte) {
	sc.src = src
}

func (sc *Scanner) SrcFrom(a int) []byte {
	return sc.src[a:]
}
func (sc *Scanner) SrcFromTo(a, b int) []byte {
	return sc.src[a:b]
}
func (sc *Scanner) SrcLen() int {
	return len(sc.src)
}

//----------

func (sc *Scanner) SrcSection(pos int) string {
	const pad = 35
	start := max(pos-pad, 0)
	end := min(pos+pad, sc.SrcLen())
	return SurroundingString(sc.SrcFromTo(start, end), pos-start, pad)
}
func (sc *Scanner) SrcError(pos int, err error) error {
	return fmt.Errorf("%v: %v", err, sc.SrcSection(pos))
}

// 1-based line and column (in bytes)
func (sc *Scanner) LineCol(pos int) (int, int) {
	pos = min(max(pos, 0), sc.SrcLen())
	src := sc.src[:pos]
	line := 1 + bytes.Count(src, []byte{'\n'})
	col := pos - (bytes.LastIndexByte(src, '\n') + 1) + 1
	return line, col
}

//----------

func (sc *Scanner) ReadByte(pos int) (byte, int, error) {
	if pos >= sc.SrcLen() {
		return 0, pos, EOF
	}
	return sc.src[pos], pos + 1, nil
}

func (sc *Scanner) ReadRune(pos int) (rune, int, error) {
	ru, size := utf8.DecodeRune(sc.SrcFrom(pos))
	if size == 0 {
		return 0, pos, EOF
	}
	return ru, pos + size, nil
}

//----------

func (sc *Scanner) EnsureFatalError(err error) error {
	e2, ok := err.(*Error)
	if !ok {
		e2 = &Error{err: err}
	}
	e2.Fatal = true
	return e2
}

//----------
//----------
//----------

type MFn func(pos int) (int, error)      // match func
type VFn func(pos int) (any, int, error) // value func

//----------
//----------
//----------

// A fatal error stops Or and Optional from trying the alternatives.
type Error struct {
	err   error
	Fatal bool
}

func (e *Error) Error() string {
	return e.err.Error()
}
func (e *Error) Unwrap() error {
	return e.err
}

func errorIsFatal(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Fatal
}

//----------

var NoMatchErr = errors.New("no match")
var EOF = io.EOF
