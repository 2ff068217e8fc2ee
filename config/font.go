package config

import (
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/golang/freetype/truetype"
	"github.com/invopop/jsonschema"
	"github.com/jmigpin/xkeyboard/util/flagsutil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	DefaultFontFamily = "JetBrains Mono"
	EmojiFontFamily   = "Noto Color Emoji"
)

// LastResortFontFamily is the family of the font compiled into the binary,
// the end of every fallback chain.
var LastResortFontFamily = sync.OnceValue(func() string {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return "Go"
	}
	if name := f.Name(truetype.NameIDFontFamily); name != "" {
		return name
	}
	return "Go"
})

//----------

type FontAttributes struct {
	Family     string `toml:"family" json:"family"`
	Bold       bool   `toml:"bold" json:"bold,omitempty"`
	Italic     bool   `toml:"italic" json:"italic,omitempty"`
	IsFallback bool   `toml:"is_fallback" json:"is_fallback,omitempty"`
}

func NewFontAttributes(family string) FontAttributes {
	return FontAttributes{Family: family}
}

func NewFallbackFontAttributes(family string) FontAttributes {
	return FontAttributes{Family: family, IsFallback: true}
}

func DefaultFontAttributes() FontAttributes {
	return NewFontAttributes(DefaultFontFamily)
}

func (fa FontAttributes) String() string {
	s := fa.Family
	if fa.Bold {
		s += " bold"
	}
	if fa.Italic {
		s += " italic"
	}
	if fa.IsFallback {
		s += " (fallback)"
	}
	return s
}

//----------

// TextStyle is an ordered font preference, plus an optional colour used
// instead of the default foreground.
type TextStyle struct {
	Font       []FontAttributes `toml:"font" json:"font,omitempty"`
	Foreground *RGBColor        `toml:"foreground" json:"foreground,omitempty"`
}

func DefaultTextStyle() TextStyle {
	return TextStyle{Font: []FontAttributes{DefaultFontAttributes()}}
}

func (ts TextStyle) withFont(fn func(i int, fa *FontAttributes)) TextStyle {
	u := TextStyle{Foreground: ts.Foreground}
	u.Font = make([]FontAttributes, len(ts.Font))
	for i, fa := range ts.Font {
		fn(i, &fa)
		u.Font[i] = fa
	}
	return u
}

func (ts TextStyle) MakeBold() TextStyle {
	return ts.withFont(func(_ int, fa *FontAttributes) { fa.Bold = true })
}

func (ts TextStyle) MakeItalic() TextStyle {
	return ts.withFont(func(_ int, fa *FontAttributes) { fa.Italic = true })
}

// Trailing qualifiers removed from a family name, in order. Italic goes
// first since it is usually last in the name.
var familyQualifiers = []string{
	" Italic",
	" Thin",
	" Extra Light",
	" Normal",
	" Regular",
	" Medium",
	" Semi Bold",
	" Bold",
	" Extra Bold",
	" Ultra Bold",
	" Book",
}

// ReduceFirstFontToFamily removes weight and style words from the end of the
// first family name, so MakeBold and MakeItalic can pick the variant.
func (ts TextStyle) ReduceFirstFontToFamily() TextStyle {
	return ts.withFont(func(i int, fa *FontAttributes) {
		if i == 0 {
			fa.Family = reduceFamily(fa.Family)
		}
	})
}

func reduceFamily(family string) string {
	for _, q := range familyQualifiers {
		for strings.HasSuffix(family, q) {
			family = strings.TrimSuffix(family, q)
		}
	}
	return family
}

// FontWithFallback is the preference list with the bundled fonts appended.
func (ts TextStyle) FontWithFallback() []FontAttributes {
	u := append([]FontAttributes(nil), ts.Font...)

	dflt := DefaultFontAttributes()
	found := false
	for _, fa := range u {
		if fa == dflt {
			found = true
			break
		}
	}
	if !found {
		dflt.IsFallback = true
		u = append(u, dflt)
	}

	u = append(u,
		NewFallbackFontAttributes(EmojiFontFamily),
		NewFallbackFontAttributes(LastResortFontFamily()))
	return u
}

//----------

// RGBColor is written as "#rrggbb".
type RGBColor struct {
	colorful.Color
}

func ParseRGBColor(s string) (RGBColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, errors.Wrapf(err, "color %q", s)
	}
	return RGBColor{c}, nil
}

func (c RGBColor) String() string {
	return c.Hex()
}

func (c RGBColor) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *RGBColor) UnmarshalText(b []byte) error {
	u, err := ParseRGBColor(string(b))
	if err != nil {
		return err
	}
	*c = u
	return nil
}

func (RGBColor) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Pattern: "^#[0-9a-fA-F]{6}$"}
}

//----------

type FreeTypeLoadFlags uint32

const (
	LoadDefault       FreeTypeLoadFlags = 0
	LoadNoHinting     FreeTypeLoadFlags = 2
	LoadNoBitmap      FreeTypeLoadFlags = 8
	LoadForceAutohint FreeTypeLoadFlags = 32
	LoadMonochrome    FreeTypeLoadFlags = 4096
	LoadNoAutohint    FreeTypeLoadFlags = 32768
)

var loadFlags = flagsutil.Table[FreeTypeLoadFlags]{
	{Name: "DEFAULT", Value: LoadDefault},
	{Name: "NO_HINTING", Value: LoadNoHinting},
	{Name: "NO_BITMAP", Value: LoadNoBitmap},
	{Name: "FORCE_AUTOHINT", Value: LoadForceAutohint},
	{Name: "MONOCHROME", Value: LoadMonochrome},
	{Name: "NO_AUTOHINT", Value: LoadNoAutohint},
}

func ParseFreeTypeLoadFlags(s string) (FreeTypeLoadFlags, error) {
	return loadFlags.Parse(s)
}

func (f FreeTypeLoadFlags) String() string {
	return loadFlags.Format(f)
}

func (f FreeTypeLoadFlags) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FreeTypeLoadFlags) UnmarshalText(b []byte) error {
	v, err := ParseFreeTypeLoadFlags(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (FreeTypeLoadFlags) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "flags joined with '|': " + strings.Join(loadFlags.Names(), ", "),
	}
}

//----------

// StyleRule selects Font for cells whose attributes match every field that
// is set.
//
//	[[font_rules]]
//	italic = true
//	font = { font = [{ family = "Operator Mono", italic = true }] }
type StyleRule struct {
	Intensity     *Intensity `toml:"intensity" json:"intensity,omitempty"`
	Underline     *Underline `toml:"underline" json:"underline,omitempty"`
	Italic        *bool      `toml:"italic" json:"italic,omitempty"`
	Blink         *Blink     `toml:"blink" json:"blink,omitempty"`
	Reverse       *bool      `toml:"reverse" json:"reverse,omitempty"`
	Strikethrough *bool      `toml:"strikethrough" json:"strikethrough,omitempty"`
	Invisible     *bool      `toml:"invisible" json:"invisible,omitempty"`

	Font TextStyle `toml:"font" json:"font"`
}

// CellAttributes are the text attributes a rule is matched against.
type CellAttributes struct {
	Intensity     Intensity
	Underline     Underline
	Italic        bool
	Blink         Blink
	Reverse       bool
	Strikethrough bool
	Invisible     bool
}

func (r *StyleRule) Matches(a CellAttributes) bool {
	a = a.withDefaults()
	return matchOpt(r.Intensity, a.Intensity) &&
		matchOpt(r.Underline, a.Underline) &&
		matchOpt(r.Italic, a.Italic) &&
		matchOpt(r.Blink, a.Blink) &&
		matchOpt(r.Reverse, a.Reverse) &&
		matchOpt(r.Strikethrough, a.Strikethrough) &&
		matchOpt(r.Invisible, a.Invisible)
}

func (a CellAttributes) withDefaults() CellAttributes {
	if a.Intensity == "" {
		a.Intensity = IntensityNormal
	}
	if a.Underline == "" {
		a.Underline = UnderlineNone
	}
	if a.Blink == "" {
		a.Blink = BlinkNone
	}
	return a
}

func matchOpt[T comparable](want *T, v T) bool {
	return want == nil || *want == v
}

// SelectTextStyle returns the style of the first matching rule, or dflt.
func SelectTextStyle(rules []StyleRule, a CellAttributes, dflt *TextStyle) *TextStyle {
	for i := range rules {
		if rules[i].Matches(a) {
			return &rules[i].Font
		}
	}
	return dflt
}

//----------

type FontConfig struct {
	Font      TextStyle   `toml:"font" json:"font"`
	FontRules []StyleRule `toml:"font_rules" json:"font_rules,omitempty"`

	FreeTypeLoadTarget FreeTypeLoadTarget `toml:"freetype_load_target" json:"freetype_load_target"`
	FreeTypeLoadFlags  FreeTypeLoadFlags  `toml:"freetype_load_flags" json:"freetype_load_flags"`

	FontHinting      FontHinting      `toml:"font_hinting" json:"font_hinting"`
	FontAntiAliasing FontAntiAliasing `toml:"font_antialias" json:"font_antialias"`

	FontLocator    FontLocatorSelection    `toml:"font_locator" json:"font_locator"`
	FontRasterizer FontRasterizerSelection `toml:"font_rasterizer" json:"font_rasterizer"`
	FontShaper     FontShaperSelection     `toml:"font_shaper" json:"font_shaper"`

	AllowSquareGlyphsToOverflowWidth AllowSquareGlyphOverflow `toml:"allow_square_glyphs_to_overflow_width" json:"allow_square_glyphs_to_overflow_width"`
}

// DefaultFontConfig uses the given font locator, usually Config.FontLocator.
func DefaultFontConfig(locator FontLocatorSelection) FontConfig {
	return FontConfig{
		Font:                             DefaultTextStyle(),
		FreeTypeLoadTarget:               LoadTargetNormal,
		FreeTypeLoadFlags:                LoadDefault,
		FontHinting:                      HintingFull,
		FontAntiAliasing:                 AntiAliasingGreyscale,
		FontLocator:                      locator,
		FontRasterizer:                   RasterizerFreeType,
		FontShaper:                       ShaperHarfbuzz,
		AllowSquareGlyphsToOverflowWidth: OverflowWhenFollowedBySpace,
	}
}

// LoadFontConfig decodes a toml file over the defaults. Unknown keys are an
// error.
func LoadFontConfig(filename string, locator FontLocatorSelection) (*FontConfig, error) {
	fc := DefaultFontConfig(locator)
	md, err := toml.DecodeFile(filename, &fc)
	if err != nil {
		return nil, errors.Wrap(err, "font config")
	}
	if err := undecodedError(md); err != nil {
		return nil, err
	}
	return &fc, nil
}

// DecodeFontConfig is LoadFontConfig for a string.
func DecodeFontConfig(data string, locator FontLocatorSelection) (*FontConfig, error) {
	fc := DefaultFontConfig(locator)
	md, err := toml.Decode(data, &fc)
	if err != nil {
		return nil, errors.Wrap(err, "font config")
	}
	if err := undecodedError(md); err != nil {
		return nil, err
	}
	return &fc, nil
}

func undecodedError(md toml.MetaData) error {
	if u := md.Undecoded(); len(u) > 0 {
		return errors.Errorf("font config: unknown keys: %v", u)
	}
	return nil
}

func FontConfigSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&FontConfig{})
	s.Title = "xkeyboard font configuration"
	return s
}
