package xkb

import (
	"github.com/BurntSushi/xgb"
	"github.com/pkg/errors"
)

var (
	ErrShortEvent = errors.New("xkb: event too short")
	ErrShortReply = errors.New("xkb: reply too short")
)

var errShort = errors.New("short buffer")

// reader decodes little-endian wire data with bounds checks. The first
// out of range access sets err; later reads return zero.
type reader struct {
	buf []byte
	err error
}

func (r reader) at8(off int) (uint8, error) {
	if off < 0 || off >= len(r.buf) {
		return 0, errors.Wrapf(ErrShortEvent, "offset %d, len %d", off, len(r.buf))
	}
	return r.buf[off], nil
}

func (r *reader) check(off, n int) bool {
	if r.err != nil {
		return false
	}
	if off < 0 || n < 0 || off+n > len(r.buf) {
		r.err = errors.Wrapf(errShort, "need %d bytes at %d, have %d", n, off, len(r.buf))
		return false
	}
	return true
}

func (r *reader) u8(off int) uint8 {
	if !r.check(off, 1) {
		return 0
	}
	return r.buf[off]
}

func (r *reader) u16(off int) uint16 {
	if !r.check(off, 2) {
		return 0
	}
	return xgb.Get16(r.buf[off:])
}

func (r *reader) u32(off int) uint32 {
	if !r.check(off, 4) {
		return 0
	}
	return xgb.Get32(r.buf[off:])
}

func (r *reader) bytes(off, n int) []byte {
	if !r.check(off, n) {
		return nil
	}
	return r.buf[off : off+n]
}

func replyError(name string, err error) error {
	return errors.Wrapf(ErrShortReply, "%s: %v", name, err)
}

func eventError(name string, err error) error {
	return errors.Wrapf(ErrShortEvent, "%s: %v", name, err)
}
