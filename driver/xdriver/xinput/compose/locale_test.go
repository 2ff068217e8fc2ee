package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocaleDir(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"locale.alias": "# aliases\n" +
			"en_US.utf8:\t\ten_US.UTF-8\n" +
			"portuguese\t\tpt_PT.ISO8859-1\n",
		"compose.dir": "# compose files\n" +
			"en_US.UTF-8/Compose:\t\ten_US.UTF-8\n" +
			"iso8859-1/Compose\t\tpt_PT.ISO8859-1\n",
		"en_US.UTF-8/Compose": "<dead_acute> <e> : \"system\"\n",
	}
	for name, s := range files {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0o755))
		require.NoError(t, os.WriteFile(fn, []byte(s), 0o644))
	}
}

func TestResolveLocale(t *testing.T) {
	p := &Paths{XLocaleDir: t.TempDir()}
	writeLocaleDir(t, p.XLocaleDir)

	assert.Equal(t, "en_US.UTF-8", p.ResolveLocale("en_US.utf8"))
	assert.Equal(t, "pt_PT.ISO8859-1", p.ResolveLocale("portuguese"))
	assert.Equal(t, "xx_YY", p.ResolveLocale("xx_YY"))
	assert.Equal(t, "C", p.ResolveLocale("POSIX"))
}

func TestLocaleComposeFile(t *testing.T) {
	dir := t.TempDir()
	p := &Paths{XLocaleDir: dir}
	writeLocaleDir(t, dir)

	f, err := p.LocaleComposeFile("en_US.utf8")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "en_US.UTF-8/Compose"), f)

	f, err = p.LocaleComposeFile("C")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "en_US.UTF-8/Compose"), f)

	f, err = p.LocaleComposeFile("portuguese")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "iso8859-1/Compose"), f)

	_, err = p.LocaleComposeFile("xx_YY")
	assert.Error(t, err)

	p2 := &Paths{XLocaleDir: filepath.Join(dir, "missing")}
	_, err = p2.LocaleComposeFile("C")
	assert.Error(t, err)
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()
	writeLocaleDir(t, dir)
	system := filepath.Join(dir, "en_US.UTF-8/Compose")

	p := &Paths{XComposeFile: "/x/compose", Home: "/home/u", XLocaleDir: dir}
	assert.Equal(t, []string{
		"/x/compose",
		"/home/u/.config/XCompose",
		"/home/u/.XCompose",
		system,
	}, p.Candidates("C"))

	p = &Paths{XDGConfigHome: "/cfg", XLocaleDir: dir}
	assert.Equal(t, []string{"/cfg/XCompose", system}, p.Candidates("en_US.UTF-8"))

	p = &Paths{XLocaleDir: dir}
	assert.Equal(t, []string{}, p.Candidates("xx_YY"))
}

func TestFromLocale(t *testing.T) {
	dir := t.TempDir()
	writeLocaleDir(t, dir)
	home := t.TempDir()

	opt := Options{Locale: "en_US.UTF-8", Paths: &Paths{Home: home, XLocaleDir: dir}}
	tab, err := FromLocale(opt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "en_US.UTF-8/Compose"), tab.Path)
	assert.Equal(t, "en_US.UTF-8", tab.Locale)

	// user file wins
	user := "<e> <e> : \"user\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".XCompose"), []byte(user), 0o644))
	tab, err = FromLocale(opt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".XCompose"), tab.Path)
	assert.Equal(t, 1, tab.Len())

	opt = Options{Locale: "xx_YY", Paths: &Paths{XLocaleDir: dir}}
	_, err = FromLocale(opt)
	assert.ErrorIs(t, err, ErrNoComposeTable)
}

func TestLocaleFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "C", LocaleFromEnv())
	t.Setenv("LANG", "pt_PT.UTF-8")
	assert.Equal(t, "pt_PT.UTF-8", LocaleFromEnv())
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", LocaleFromEnv())
}
