package config

import (
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Enumerations parse case-insensitively and are stored with the canonical
// spelling.

func parseEnum[T ~string](typeName, s string, variants []T) (T, error) {
	for _, v := range variants {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Errorf("%v is not a valid %v variant, possible values are %v", s, typeName, variants)
}

func unmarshalEnum[T ~string](dst *T, typeName string, b []byte, variants []T) error {
	v, err := parseEnum(typeName, string(b), variants)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func enumSchema[T ~string](variants []T) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string"}
	for _, v := range variants {
		s.Enum = append(s.Enum, string(v))
	}
	return s
}

//----------

type FreeTypeLoadTarget string

const (
	LoadTargetNormal        FreeTypeLoadTarget = "Normal"
	LoadTargetLight         FreeTypeLoadTarget = "Light"
	LoadTargetMono          FreeTypeLoadTarget = "Mono"
	LoadTargetHorizontalLcd FreeTypeLoadTarget = "HorizontalLcd"
	LoadTargetVerticalLcd   FreeTypeLoadTarget = "VerticalLcd"
)

var loadTargets = []FreeTypeLoadTarget{LoadTargetNormal, LoadTargetLight, LoadTargetMono, LoadTargetHorizontalLcd, LoadTargetVerticalLcd}

func (v *FreeTypeLoadTarget) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FreeTypeLoadTarget", b, loadTargets)
}
func (FreeTypeLoadTarget) JSONSchema() *jsonschema.Schema { return enumSchema(loadTargets) }

//----------

type FontHinting string

const (
	HintingNone             FontHinting = "None"
	HintingVertical         FontHinting = "Vertical"
	HintingVerticalSubpixel FontHinting = "VerticalSubpixel"
	HintingFull             FontHinting = "Full"
)

var hintings = []FontHinting{HintingNone, HintingVertical, HintingVerticalSubpixel, HintingFull}

func (v *FontHinting) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FontHinting", b, hintings)
}
func (FontHinting) JSONSchema() *jsonschema.Schema { return enumSchema(hintings) }

//----------

type FontAntiAliasing string

const (
	AntiAliasingNone      FontAntiAliasing = "None"
	AntiAliasingGreyscale FontAntiAliasing = "Greyscale"
	AntiAliasingSubpixel  FontAntiAliasing = "Subpixel"
)

var antiAliasings = []FontAntiAliasing{AntiAliasingNone, AntiAliasingGreyscale, AntiAliasingSubpixel}

func (v *FontAntiAliasing) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FontAntiAliasing", b, antiAliasings)
}
func (FontAntiAliasing) JSONSchema() *jsonschema.Schema { return enumSchema(antiAliasings) }

//----------

type AllowSquareGlyphOverflow string

const (
	OverflowNever               AllowSquareGlyphOverflow = "Never"
	OverflowAlways              AllowSquareGlyphOverflow = "Always"
	OverflowWhenFollowedBySpace AllowSquareGlyphOverflow = "WhenFollowedBySpace"
)

var overflows = []AllowSquareGlyphOverflow{OverflowNever, OverflowAlways, OverflowWhenFollowedBySpace}

func (v *AllowSquareGlyphOverflow) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "AllowSquareGlyphOverflow", b, overflows)
}
func (AllowSquareGlyphOverflow) JSONSchema() *jsonschema.Schema { return enumSchema(overflows) }

//----------

type FontLocatorSelection string

const (
	LocatorFontConfig     FontLocatorSelection = "FontConfig"
	LocatorCoreText       FontLocatorSelection = "CoreText"
	LocatorConfigDirsOnly FontLocatorSelection = "ConfigDirsOnly"
	LocatorGdi            FontLocatorSelection = "Gdi"
)

var locators = []FontLocatorSelection{LocatorFontConfig, LocatorCoreText, LocatorConfigDirsOnly, LocatorGdi}

func ParseFontLocatorSelection(s string) (FontLocatorSelection, error) {
	return parseEnum("FontLocatorSelection", s, locators)
}

func (v *FontLocatorSelection) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FontLocatorSelection", b, locators)
}
func (FontLocatorSelection) JSONSchema() *jsonschema.Schema { return enumSchema(locators) }

//----------

type FontRasterizerSelection string

const RasterizerFreeType FontRasterizerSelection = "FreeType"

var rasterizers = []FontRasterizerSelection{RasterizerFreeType}

func (v *FontRasterizerSelection) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FontRasterizerSelection", b, rasterizers)
}
func (FontRasterizerSelection) JSONSchema() *jsonschema.Schema { return enumSchema(rasterizers) }

//----------

type FontShaperSelection string

const (
	ShaperHarfbuzz FontShaperSelection = "Harfbuzz"
	ShaperAllsorts FontShaperSelection = "Allsorts"
)

var shapers = []FontShaperSelection{ShaperHarfbuzz, ShaperAllsorts}

func (v *FontShaperSelection) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "FontShaperSelection", b, shapers)
}
func (FontShaperSelection) JSONSchema() *jsonschema.Schema { return enumSchema(shapers) }

//----------

type Intensity string

const (
	IntensityNormal Intensity = "Normal"
	IntensityBold   Intensity = "Bold"
	IntensityHalf   Intensity = "Half"
)

var intensities = []Intensity{IntensityNormal, IntensityBold, IntensityHalf}

func (v *Intensity) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "Intensity", b, intensities)
}
func (Intensity) JSONSchema() *jsonschema.Schema { return enumSchema(intensities) }

type Underline string

const (
	UnderlineNone   Underline = "None"
	UnderlineSingle Underline = "Single"
	UnderlineDouble Underline = "Double"
)

var underlines = []Underline{UnderlineNone, UnderlineSingle, UnderlineDouble}

func (v *Underline) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "Underline", b, underlines)
}
func (Underline) JSONSchema() *jsonschema.Schema { return enumSchema(underlines) }

type Blink string

const (
	BlinkNone  Blink = "None"
	BlinkSlow  Blink = "Slow"
	BlinkRapid Blink = "Rapid"
)

var blinks = []Blink{BlinkNone, BlinkSlow, BlinkRapid}

func (v *Blink) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, "Blink", b, blinks)
}
func (Blink) JSONSchema() *jsonschema.Schema { return enumSchema(blinks) }
