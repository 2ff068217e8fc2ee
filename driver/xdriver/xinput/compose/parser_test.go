package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T) Options {
	return Options{Locale: "en_US.UTF-8", Paths: &Paths{XLocaleDir: t.TempDir()}}
}

func parseString(t *testing.T, src string) *Table {
	t.Helper()
	tab, err := FromReader(strings.NewReader(src), "test", testOptions(t))
	require.NoError(t, err)
	return tab
}

func lookupString(t *testing.T, tab *Table, seq ...xproto.Keysym) string {
	t.Helper()
	s, _, ok := tab.Lookup(seq)
	require.True(t, ok, "%v", seq)
	return s
}

func TestParse1(t *testing.T) {
	src := `# comment
<dead_acute> <e>        : "é"   eacute  # trailing comment
<Multi_key> <a> <e>     : "æ"   ae

<Multi_key> <o> <c>	: "©"
<Multi_key> <U20AC> <e> : EuroSign
`
	tab := parseString(t, src)
	assert.Equal(t, 4, tab.Len())
	assert.Equal(t, "", tab.Path)

	s, ks, ok := tab.Lookup([]xproto.Keysym{ksDeadAcute, ksE})
	assert.True(t, ok)
	assert.Equal(t, "é", s)
	assert.Equal(t, xproto.Keysym(0xe9), ks)

	assert.Equal(t, "æ", lookupString(t, tab, keysyms.MultiKey, ksA, ksE))
	assert.Equal(t, "©", lookupString(t, tab, keysyms.MultiKey, ksO, ksC))

	s, ks, ok = tab.Lookup([]xproto.Keysym{keysyms.MultiKey, 0x10020ac, ksE})
	assert.True(t, ok)
	assert.Equal(t, "", s)
	assert.Equal(t, xproto.Keysym(0x20ac), ks)
}

func TestParseEscapes(t *testing.T) {
	src := `<a> <b> : "\x41\102\"\\"
<a> <c> : "\q"
<a> <d> : "x\ty"
`
	tab := parseString(t, src)
	assert.Equal(t, `AB"\`, lookupString(t, tab, ksA, 0x62))
	assert.Equal(t, `\q`, lookupString(t, tab, ksA, 0x63))
	assert.Equal(t, "x\ty", lookupString(t, tab, ksA, 0x64))
}

func TestParseBadStrings(t *testing.T) {
	src := `<a> <b> : "\777"
<a> <c> : "abc
<a> <d> : "\x"
<a> <e> : "x" <b>
<e> <e> : "\x4g"
`
	tab := parseString(t, src)
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, "\x04g", lookupString(t, tab, ksE, ksE))
}

func TestSourceErrorf(t *testing.T) {
	src := newSource([]byte("<a> : \"x\"\n<b> <c> ? \"y\"\n"), "file")
	p := &parser{table: NewTable("C")}
	_, err := p.production(src, 10)
	require.Error(t, err)
	assert.Equal(t, "file:2:9: expecting ':'", err.Error())

	assert.Equal(t, 10, src.skipLine(0))
	assert.Equal(t, 24, src.skipLine(10))
}

func TestParseModifiers(t *testing.T) {
	src := `~Ctrl Shift <a> !Alt <c> : "x"
! <a> <d> : "y"
`
	tab := parseString(t, src)
	assert.Equal(t, "x", lookupString(t, tab, ksA, 0x63))
	assert.Equal(t, "y", lookupString(t, tab, ksA, 0x64))
}

func TestParseBadLines(t *testing.T) {
	src := `<a <b> : "1"
<nosuchkeysym> <a> : "2"
Hyper <a> : "3"
<a> <b> "4"
<a> <b> : "5" junk
<a> <b> :
<e> <e> : "ok"
`
	tab := parseString(t, src)
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, "ok", lookupString(t, tab, ksE, ksE))
}

func TestParsePrefixRules(t *testing.T) {
	src := `<a> <b> : "1"
<a> <b> <c> : "2"
<a> : "3"
`
	tab := parseString(t, src)
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, "2", lookupString(t, tab, ksA, 0x62, 0x63))
}

func TestParseInclude(t *testing.T) {
	home := t.TempDir()
	inc := "<a> <a> : \"included\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "inc"), []byte(inc), 0o644))

	main := filepath.Join(home, "main")
	src := "include \"%H/inc\" # comment\n<e> <e> : \"main\"\n"
	require.NoError(t, os.WriteFile(main, []byte(src), 0o644))

	opt := testOptions(t)
	opt.Paths.Home = home
	tab, err := FromFile(main, opt)
	require.NoError(t, err)
	assert.Equal(t, main, tab.Path)
	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, "included", lookupString(t, tab, ksA, ksA))
	assert.Equal(t, "main", lookupString(t, tab, ksE, ksE))
}

func TestParseIncludeLocale(t *testing.T) {
	opt := testOptions(t)
	writeLocaleDir(t, opt.Paths.XLocaleDir)

	tab, err := FromReader(strings.NewReader("include \"%L\"\n"), "test", opt)
	require.NoError(t, err)
	assert.Equal(t, "system", lookupString(t, tab, ksDeadAcute, ksE))
}

func TestParseIncludeErrors(t *testing.T) {
	dir := t.TempDir()
	self := filepath.Join(dir, "self")
	require.NoError(t, os.WriteFile(self, []byte("include \""+self+"\"\n"), 0o644))

	_, err := FromFile(self, testOptions(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoComposeTable))
	assert.Contains(t, err.Error(), "nested")

	_, err = FromReader(strings.NewReader("include \"/no/such/file\"\n"), "test", testOptions(t))
	assert.True(t, errors.Is(err, ErrNoComposeTable))

	_, err = FromReader(strings.NewReader("include \"%Z\"\n"), "test", testOptions(t))
	assert.True(t, errors.Is(err, ErrNoComposeTable))

	_, err = FromFile(filepath.Join(dir, "missing"), testOptions(t))
	assert.True(t, errors.Is(err, ErrNoComposeTable))
}

func TestParseLegacyEncoding(t *testing.T) {
	opt := testOptions(t)
	opt.Locale = "en_US.ISO-8859-1"
	tab, err := FromReader(strings.NewReader("<a> <e> : \"\xe6\"\n"), "test", opt)
	require.NoError(t, err)
	assert.Equal(t, "æ", lookupString(t, tab, ksA, ksE))
}

func TestCodeset(t *testing.T) {
	assert.Equal(t, "ISO-8859-1", codeset("en_US.ISO-8859-1@euro"))
	assert.Equal(t, "UTF-8", codeset("pt_PT.UTF-8"))
	assert.Equal(t, "", codeset("C"))
	assert.Nil(t, localeEncoding("en_US.UTF-8"))
	assert.NotNil(t, localeEncoding("de_DE.iso88591"))
	assert.Nil(t, localeEncoding("xx.NOSUCHCODESET"))
}
