package pscan

// Wrap builds match funcs out of the Match methods, for use as arguments.
type Wrap struct {
	sc *Scanner
	M  *Match
}

func (w *Wrap) init(sc *Scanner) {
	w.sc = sc
	w.M = sc.M
}

func (w *Wrap) And(fns ...MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.And(pos, fns...)
	}
}

func (w *Wrap) Or(fns ...MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.Or(pos, fns...)
	}
}

func (w *Wrap) Optional(fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.Optional(pos, fn)
	}
}

func (w *Wrap) Byte(b byte) MFn {
	return func(pos int) (int, error) {
		return w.M.Byte(pos, b)
	}
}

func (w *Wrap) ByteFn(fn func(byte) bool) MFn {
	return func(pos int) (int, error) {
		return w.M.ByteFn(pos, fn)
	}
}

func (w *Wrap) ByteFnLoop(fn func(byte) bool) MFn {
	return func(pos int) (int, error) {
		return w.M.ByteFnLoop(pos, fn)
	}
}

func (w *Wrap) Sequence(seq string) MFn {
	return func(pos int) (int, error) {
		return w.M.Sequence(pos, seq)
	}
}

func (w *Wrap) Rune(ru rune) MFn {
	return func(pos int) (int, error) {
		return w.M.Rune(pos, ru)
	}
}

func (w *Wrap) RuneFn(fn func(rune) bool) MFn {
	return func(pos int) (int, error) {
		return w.M.RuneFn(pos, fn)
	}
}

func (w *Wrap) LimitedLoop(min, max int, fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.LimitedLoop(pos, min, max, fn)
	}
}

func (w *Wrap) Loop(fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.Loop(pos, fn)
	}
}

func (w *Wrap) OptLoop(fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.OptLoop(pos, fn)
	}
}

func (w *Wrap) Spaces(includeNL bool, escape rune) MFn {
	return func(pos int) (int, error) {
		return w.M.Spaces(pos, includeNL, escape)
	}
}

func (w *Wrap) EscapeAny(escape rune) MFn {
	return func(pos int) (int, error) {
		return w.M.EscapeAny(pos, escape)
	}
}

func (w *Wrap) ToNLOrErr(includeNL bool, esc rune) MFn {
	return func(pos int) (int, error) {
		return w.M.ToNLOrErr(pos, includeNL, esc)
	}
}

func (w *Wrap) MustErr(fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.MustErr(pos, fn)
	}
}

func (w *Wrap) PtrFalse(v *bool) MFn {
	return func(pos int) (int, error) {
		return w.M.PtrFalse(pos, v)
	}
}

func (w *Wrap) StaticTrue(v bool) MFn {
	return func(pos int) (int, error) {
		return w.M.StaticTrue(pos, v)
	}
}

func (w *Wrap) OnValue(fn VFn, cb func(any)) MFn {
	return func(pos int) (int, error) {
		return w.M.OnValue(pos, fn, cb)
	}
}

func (w *Wrap) OnValue2(fn VFn, cb func(any) error) MFn {
	return func(pos int) (int, error) {
		return w.M.OnValue2(pos, fn, cb)
	}
}

func (w *Wrap) StringValue(fn MFn) VFn {
	return func(pos int) (any, int, error) {
		return w.M.StringValue(pos, fn)
	}
}

func (w *Wrap) FatalOnError(s string, fn MFn) MFn {
	return func(pos int) (int, error) {
		return w.M.FatalOnError(pos, s, fn)
	}
}
