package compose

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/util/parseutil/pscan"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

type Options struct {
	Locale string // empty: LocaleFromEnv
	Paths  *Paths // nil: PathsFromEnv
	Logger zerolog.Logger
}

func (opt *Options) locale() string {
	if opt.Locale != "" {
		return opt.Locale
	}
	return LocaleFromEnv()
}

func (opt *Options) paths() *Paths {
	if opt.Paths != nil {
		return opt.Paths
	}
	return PathsFromEnv()
}

//----------

// FromLocale loads the first compose file found for the locale, looking at
// the user files before the system one.
func FromLocale(opt Options) (*Table, error) {
	locale := opt.locale()
	paths := opt.paths()
	for _, filename := range paths.Candidates(locale) {
		b, err := os.ReadFile(filename)
		if err != nil {
			opt.Logger.Debug().Err(err).Str("file", filename).Msg("compose file skipped")
			continue
		}
		opt.Locale, opt.Paths = locale, paths
		return fromBytes(b, filename, opt)
	}
	return nil, errors.Wrapf(ErrNoComposeTable, "locale %q", locale)
}

func FromFile(filename string, opt Options) (*Table, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(ErrNoComposeTable, "%v", err)
	}
	return fromBytes(b, filename, opt)
}

func FromReader(r io.Reader, name string, opt Options) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrNoComposeTable, "%v", err)
	}
	t, err := fromBytes(b, name, opt)
	if t != nil {
		t.Path = ""
	}
	return t, err
}

func fromBytes(src []byte, filename string, opt Options) (*Table, error) {
	locale := opt.locale()
	p := &parser{
		table:  NewTable(locale),
		paths:  opt.paths(),
		logger: opt.Logger,
	}
	p.table.Path = filename
	if err := p.parse(src, filename, 0); err != nil {
		return nil, errors.Wrapf(ErrNoComposeTable, "%v", err)
	}
	p.logger.Debug().
		Str("file", filename).
		Str("locale", locale).
		Int("sequences", p.table.Len()).
		Msg("compose table loaded")
	return p.table, nil
}

//----------

type parser struct {
	table  *Table
	paths  *Paths
	logger zerolog.Logger
}

type includeError struct {
	err error
}

func (e *includeError) Error() string { return e.err.Error() }
func (e *includeError) Unwrap() error { return e.err }

// source is one compose file being parsed.
type source struct {
	sc   *pscan.Scanner
	name string
}

func newSource(b []byte, name string) *source {
	sc := pscan.NewScanner()
	sc.SetSrc(b)
	return &source{sc: sc, name: name}
}

func (src *source) errorf(pos int, f string, args ...any) error {
	l, c := src.sc.LineCol(pos)
	return fmt.Errorf("%s:%d:%d: %s", src.name, l, c, fmt.Sprintf(f, args...))
}

// rest of the line, including the newline
func (src *source) skipLine(pos int) int {
	p2, _ := src.sc.M.ToNLOrErr(pos, true, 0)
	return p2
}

//----------

func (p *parser) parse(b []byte, filename string, depth int) error {
	src := newSource(p.decode(b, filename), filename)
	pos := 0
	for pos < src.sc.SrcLen() {
		p2, err := p.line(src, pos, depth)
		if err != nil {
			var ie *includeError
			if errors.As(err, &ie) {
				return err
			}
			p.logger.Warn().Err(err).Msg("compose: skipping line")
			p2 = src.skipLine(pos)
		}
		pos = p2
	}
	return nil
}

func (p *parser) line(src *source, pos, depth int) (int, error) {
	m, w := src.sc.M, src.sc.W

	// empty or comment
	if p2, err := p.lineEnd(src, pos); err == nil {
		return p2, nil
	}

	p2, err := m.And(pos,
		m.OptSpaces,
		w.Sequence("include"),
		w.MustErr(w.ByteFn(isIdentByte)),
	)
	if err == nil {
		return p.include(src, p2, depth)
	}
	return p.production(src, pos)
}

// spaces, an optional comment, and the newline or the end of the source
func (p *parser) lineEnd(src *source, pos int) (int, error) {
	m, w := src.sc.M, src.sc.W
	p2, err := m.And(pos,
		m.OptSpaces,
		w.Optional(w.And(
			w.Byte('#'),
			w.ToNLOrErr(false, 0),
		)),
		w.Or(w.Byte('\n'), m.Eof),
	)
	if err != nil {
		b, _, _ := src.sc.ReadByte(p2)
		return pos, src.errorf(p2, "unexpected %q", b)
	}
	return p2, nil
}

//----------

func (p *parser) include(src *source, pos, depth int) (int, error) {
	pos, _ = src.sc.M.OptSpaces(pos)
	s, p2, err := p.quoted(src, pos)
	if err != nil {
		return pos, &includeError{src.errorf(p2, "include: expecting string: %v", err)}
	}
	p3, err := p.lineEnd(src, p2)
	if err != nil {
		return pos, &includeError{err}
	}

	filename, err := p.expandInclude(s)
	if err != nil {
		return pos, &includeError{src.errorf(pos, "include %q: %v", s, err)}
	}
	if depth+1 > maxIncludeDepth {
		return pos, &includeError{src.errorf(pos, "include %q: too many nested includes", s)}
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return pos, &includeError{src.errorf(pos, "include: %v", err)}
	}
	if err := p.parse(b, filename, depth+1); err != nil {
		return pos, err
	}
	return p3, nil
}

func (p *parser) expandInclude(s string) (string, error) {
	sb := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			sb.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			return "", errors.New("trailing %")
		}
		switch s[i] {
		case '%':
			sb.WriteByte('%')
		case 'H':
			if p.paths.Home == "" {
				return "", errors.New("%H: HOME is not set")
			}
			sb.WriteString(p.paths.Home)
		case 'L':
			f, err := p.paths.LocaleComposeFile(p.table.Locale)
			if err != nil {
				return "", errors.Wrap(err, "%L")
			}
			sb.WriteString(f)
		case 'S':
			sb.WriteString(p.paths.xlocaleDir())
		default:
			return "", errors.Errorf("unknown expansion %%%c", s[i])
		}
	}
	return sb.String(), nil
}

//----------

func (p *parser) production(src *source, pos int) (int, error) {
	m, w := src.sc.M, src.sc.W

	unknown := ""
	lookup := func(name string) xproto.Keysym {
		ks, ok := keysyms.Lookup(name)
		if !ok && unknown == "" {
			unknown = name
		}
		return ks
	}

	var seq []xproto.Keysym
	keyEvent := w.And(
		m.OptSpaces,
		p.modifiers(src),
		w.OnValue(p.keysymName(src), func(v any) {
			seq = append(seq, lookup(v.(string)))
		}),
	)
	p2, err := m.Loop(pos, keyEvent)
	if err != nil {
		return pos, src.errorf(p2, "expecting <keysym>: %v", err)
	}
	pos, _ = m.OptSpaces(p2)

	p2, err = m.Byte(pos, ':')
	if err != nil {
		return pos, src.errorf(pos, "expecting ':'")
	}
	pos, _ = m.OptSpaces(p2)

	// result: "string", keysym, or both
	str, hasStr := "", false
	pos, err = m.Optional(pos, func(pos int) (int, error) {
		s, p2, err := p.quoted(src, pos)
		if err == nil {
			str, hasStr = s, true
		}
		return p2, err
	})
	if err != nil {
		return pos, src.errorf(pos, "%v", err)
	}
	pos, _ = m.OptSpaces(pos)

	ks := keysyms.NoSymbol
	p2, err = m.OnValue(pos, w.StringValue(w.ByteFnLoop(isIdentByte)), func(v any) {
		ks = lookup(v.(string))
	})
	if err == nil {
		pos = p2
	} else if !hasStr {
		return pos, src.errorf(pos, "expecting string or keysym")
	}

	pos, err = p.lineEnd(src, pos)
	if err != nil {
		return pos, err
	}

	if unknown != "" {
		p.logger.Debug().Str("keysym", unknown).Str("file", src.name).Msg("compose: unknown keysym, sequence skipped")
		return pos, nil
	}
	if err := p.table.Add(seq, str, ks); err != nil {
		p.logger.Debug().Err(err).Str("file", src.name).Msg("compose: sequence skipped")
	}
	return pos, nil
}

// modifier prefixes are accepted and ignored
var modifierNames = map[string]bool{
	"None": true, "Ctrl": true, "Lock": true, "Caps": true,
	"Shift": true, "Alt": true, "Meta": true,
}

func (p *parser) modifiers(src *source) pscan.MFn {
	m, w := src.sc.M, src.sc.W
	mod := w.And(
		w.Optional(w.Byte('~')),
		w.OnValue2(w.StringValue(w.ByteFnLoop(isIdentByte)), func(v any) error {
			if !modifierNames[v.(string)] {
				return src.sc.EnsureFatalError(fmt.Errorf("unknown modifier %q", v))
			}
			return nil
		}),
		m.OptSpaces,
	)
	return w.And(
		w.Optional(w.And(w.Byte('!'), m.OptSpaces)),
		w.OptLoop(mod),
	)
}

// "<name>"
func (p *parser) keysymName(src *source) pscan.VFn {
	m, w := src.sc.M, src.sc.W
	return func(pos int) (any, int, error) {
		name := ""
		p2, err := m.And(pos,
			w.Byte('<'),
			w.FatalOnError("unterminated keysym", w.And(
				w.OnValue(w.StringValue(w.ByteFnLoop(isKeysymNameByte)), func(v any) {
					name = v.(string)
				}),
				w.Byte('>'),
			)),
		)
		if err != nil {
			return nil, p2, err
		}
		return name, p2, nil
	}
}

// double quoted string with escapes decoded
func (p *parser) quoted(src *source, pos int) (string, int, error) {
	m, w := src.sc.M, src.sc.W
	buf := []byte{}
	plain := func(b byte) bool {
		return b != '"' && b != '\\' && b != '\n'
	}
	p2, err := m.And(pos,
		w.Byte('"'),
		w.OptLoop(w.Or(
			w.OnValue(w.StringValue(w.ByteFnLoop(plain)), func(v any) {
				buf = append(buf, v.(string)...)
			}),
			w.And(
				w.Byte('\\'),
				func(pos int) (int, error) {
					e, p2, err := p.escape(src, pos)
					if err == nil {
						buf = append(buf, e...)
					}
					return p2, err
				},
			),
		)),
		w.FatalOnError("unterminated string", w.Byte('"')),
	)
	if err != nil {
		return "", p2, err
	}
	return string(buf), p2, nil
}

// escape body, after the backslash
func (p *parser) escape(src *source, pos int) ([]byte, int, error) {
	m, w := src.sc.M, src.sc.W
	var out []byte
	num := func(base int) func(any) error {
		return func(v any) error {
			u, err := strconv.ParseUint(v.(string), base, 16)
			if err != nil || u > 0xff {
				return src.sc.EnsureFatalError(fmt.Errorf("numeric escape out of range: %q", v))
			}
			out = []byte{byte(u)}
			return nil
		}
	}
	isX := func(b byte) bool { return b == 'x' || b == 'X' }
	p2, err := m.Or(pos,
		w.OnValue2(w.StringValue(w.LimitedLoop(1, 3, w.ByteFn(isOctalByte))), num(8)),
		w.And(
			w.ByteFn(isX),
			w.FatalOnError("bad numeric escape",
				w.OnValue2(w.StringValue(w.LimitedLoop(1, 2, w.ByteFn(isHexByte))), num(16))),
		),
		w.OnValue(w.StringValue(m.OneByte), func(v any) {
			switch b := v.(string)[0]; b {
			case '\\', '"':
				out = []byte{b}
			case 'n':
				out = []byte{'\n'}
			case 't':
				out = []byte{'\t'}
			case 'r':
				out = []byte{'\r'}
			default:
				// unknown escape: keep as is
				out = []byte{'\\', b}
			}
		}),
	)
	return out, p2, err
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
func isKeysymNameByte(b byte) bool {
	return b != '>' && b != '\n' && b != ' ' && b != '\t'
}
func isOctalByte(b byte) bool {
	return '0' <= b && b <= '7'
}
func isHexByte(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

//----------

// Compose files written in a legacy charset are decoded with the codeset of
// the locale.
func (p *parser) decode(src []byte, filename string) []byte {
	if utf8.Valid(src) {
		return src
	}
	enc := localeEncoding(p.table.Locale)
	if enc == nil {
		return src
	}
	b, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		p.logger.Debug().Err(err).Str("file", filename).Msg("compose: decode")
		return src
	}
	return b
}

var isoCodesetRe = regexp.MustCompile(`(?i)^iso-?8859-?(\d+)$`)

func localeEncoding(locale string) encoding.Encoding {
	cs := codeset(locale)
	if cs == "" || strings.EqualFold(cs, "utf-8") || strings.EqualFold(cs, "utf8") {
		return nil
	}
	if m := isoCodesetRe.FindStringSubmatch(cs); m != nil {
		cs = "ISO-8859-" + m[1]
	}
	enc, err := ianaindex.IANA.Encoding(cs)
	if err != nil {
		return nil
	}
	return enc
}

// "en_US.ISO-8859-1@euro" -> "ISO-8859-1"
func codeset(locale string) string {
	i := strings.IndexByte(locale, '.')
	if i < 0 {
		return ""
	}
	cs := locale[i+1:]
	if j := strings.IndexByte(cs, '@'); j >= 0 {
		cs = cs[:j]
	}
	return cs
}
