package compose

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const DefaultXLocaleDir = "/usr/share/X11/locale"

// Paths holds the environment that compose file lookup depends on.
type Paths struct {
	XComposeFile  string
	XDGConfigHome string
	Home          string
	XLocaleDir    string
}

// PathsFromEnv reads the environment. Overrides are ignored when the process
// runs set-uid or set-gid.
func PathsFromEnv() *Paths {
	return &Paths{
		XComposeFile:  secureGetenv("XCOMPOSEFILE"),
		XDGConfigHome: secureGetenv("XDG_CONFIG_HOME"),
		Home:          secureGetenv("HOME"),
		XLocaleDir:    secureGetenv("XLOCALEDIR"),
	}
}

func (p *Paths) xlocaleDir() string {
	if p.XLocaleDir != "" {
		return p.XLocaleDir
	}
	return DefaultXLocaleDir
}

// LocaleFromEnv returns the locale for the character type category.
func LocaleFromEnv() string {
	for _, k := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "C"
}

//----------

// Candidates lists the compose files to try, in order.
func (p *Paths) Candidates(locale string) []string {
	u := []string{}
	if p.XComposeFile != "" {
		u = append(u, p.XComposeFile)
	}
	if p.XDGConfigHome != "" {
		u = append(u, filepath.Join(p.XDGConfigHome, "XCompose"))
	} else if p.Home != "" {
		u = append(u, filepath.Join(p.Home, ".config", "XCompose"))
	}
	if p.Home != "" {
		u = append(u, filepath.Join(p.Home, ".XCompose"))
	}
	if f, err := p.LocaleComposeFile(locale); err == nil {
		u = append(u, f)
	}
	return u
}

// LocaleComposeFile finds the system compose file of a locale through the
// locale.alias and compose.dir files.
func (p *Paths) LocaleComposeFile(locale string) (string, error) {
	locale = p.ResolveLocale(locale)
	if isCLocale(locale) {
		locale = "en_US.UTF-8"
	}
	dir := p.xlocaleDir()
	name, ok, err := resolveName(filepath.Join(dir, "compose.dir"), locale, false)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Errorf("no compose file for locale %q", locale)
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return name, nil
}

// ResolveLocale maps a locale through locale.alias. Unknown locales are
// returned unchanged.
func (p *Paths) ResolveLocale(locale string) string {
	if isCLocale(locale) {
		return "C"
	}
	alias, ok, err := resolveName(filepath.Join(p.xlocaleDir(), "locale.alias"), locale, true)
	if err != nil || !ok {
		return locale
	}
	return alias
}

func isCLocale(locale string) bool {
	return locale == "C" || locale == "POSIX"
}

// resolveName reads "left: right" lines. Looks up by left returning right,
// or by right returning left.
func resolveName(filename, name string, byLeft bool) (string, bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		left := strings.TrimSuffix(fields[0], ":")
		right := fields[1]
		if byLeft && left == name {
			return right, true, nil
		}
		if !byLeft && right == name {
			return left, true, nil
		}
	}
	return "", false, sc.Err()
}
