package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmigpin/xkeyboard/config"
	"github.com/spf13/cobra"
)

func newFontsCmd(a *app) *cobra.Command {
	schema := false
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Print the font configuration",
		Long: `Loads the font configuration (--fonts) over the defaults and prints the font
fallback chain and the style rules.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if schema {
				return printFontSchema(w)
			}
			fc, err := a.loadFontConfig()
			if err != nil {
				return err
			}
			printFontConfig(w, fc, a.cfg.FontLocator)
			return nil
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "print the json schema of the font configuration")
	return cmd
}

func (a *app) loadFontConfig() (*config.FontConfig, error) {
	if a.cfg.Fonts == "" {
		fc := config.DefaultFontConfig(a.cfg.FontLocator)
		return &fc, nil
	}
	return config.LoadFontConfig(a.cfg.Fonts, a.cfg.FontLocator)
}

func printFontSchema(w io.Writer) error {
	b, err := json.MarshalIndent(config.FontConfigSchema(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printFontConfig(w io.Writer, fc *config.FontConfig, platform config.FontLocatorSelection) {
	fmt.Fprintf(w, "locator: %v (platform: %v)\n", fc.FontLocator, platform)
	fmt.Fprintf(w, "rasterizer: %v, shaper: %v\n", fc.FontRasterizer, fc.FontShaper)
	fmt.Fprintf(w, "hinting: %v, antialias: %v\n", fc.FontHinting, fc.FontAntiAliasing)
	fmt.Fprintf(w, "load: %v %v\n", fc.FreeTypeLoadTarget, fc.FreeTypeLoadFlags)

	fmt.Fprintln(w, "font:")
	printTextStyle(w, &fc.Font)

	for i := range fc.FontRules {
		r := &fc.FontRules[i]
		fmt.Fprintf(w, "rule %d: %v\n", i+1, ruleConditions(r))
		printTextStyle(w, &r.Font)
	}
}

func printTextStyle(w io.Writer, ts *config.TextStyle) {
	if ts.Foreground != nil {
		fmt.Fprintf(w, "\tforeground: %v\n", ts.Foreground)
	}
	for _, fa := range ts.FontWithFallback() {
		fmt.Fprintf(w, "\t%v\n", fa)
	}
}

func ruleConditions(r *config.StyleRule) string {
	u := []string{}
	add := func(name string, v any) {
		u = append(u, fmt.Sprintf("%v=%v", name, v))
	}
	if r.Intensity != nil {
		add("intensity", *r.Intensity)
	}
	if r.Underline != nil {
		add("underline", *r.Underline)
	}
	if r.Italic != nil {
		add("italic", *r.Italic)
	}
	if r.Blink != nil {
		add("blink", *r.Blink)
	}
	if r.Reverse != nil {
		add("reverse", *r.Reverse)
	}
	if r.Strikethrough != nil {
		add("strikethrough", *r.Strikethrough)
	}
	if r.Invisible != nil {
		add("invisible", *r.Invisible)
	}
	if len(u) == 0 {
		return "always"
	}
	return strings.Join(u, " ")
}
