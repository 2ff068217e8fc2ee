package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/xkeyboard/driver/xdriver/keysyms"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput/compose"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newComposeCmd(a *app) *cobra.Command {
	list := false
	cmd := &cobra.Command{
		Use:   "compose <keysym>...",
		Short: "Feed keysyms to the compose table and print each status",
		Long: `Loads the compose table (--compose-file, or the one of the locale) and feeds
it the named keysyms, as key presses would. Names are keysym names
("dead_acute", "e"), "U+00E9" or "0xfe51". With --list, prints every
sequence of the table instead.`,
		Example: "  xkeyboard compose dead_acute e\n  xkeyboard compose Multi_key o c\n  xkeyboard compose --list",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := make([]xproto.Keysym, 0, len(args))
			for _, name := range args {
				ks, ok := keysyms.Lookup(name)
				if !ok {
					return errors.Errorf("unknown keysym: %q", name)
				}
				seq = append(seq, ks)
			}
			t, err := a.loadComposeTable()
			if err != nil {
				return err
			}
			if list {
				return listCompose(cmd.OutOrStdout(), t)
			}
			return feedCompose(cmd.OutOrStdout(), t, seq)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print the sequences of the compose table")
	return cmd
}

func (a *app) loadComposeTable() (*compose.Table, error) {
	opt := compose.Options{Locale: a.cfg.Locale, Logger: a.logger}
	if a.cfg.ComposeFile != "" {
		return compose.FromFile(a.cfg.ComposeFile, opt)
	}
	return compose.FromLocale(opt)
}

func feedCompose(w io.Writer, t *compose.Table, seq []xproto.Keysym) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	st := compose.NewState(t)
	for _, ks := range seq {
		res := st.Feed(ks)
		line := fmt.Sprintf("%v\t%v", keysyms.Name(ks), st.Status())
		if res == compose.FeedIgnored {
			line += "\t(ignored)"
		}
		if st.Status() == compose.Composed {
			line += fmt.Sprintf("\t%q\t%v", st.Utf8(), keysyms.Name(st.Keysym()))
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

// one sequence per line, sorted
func listCompose(w io.Writer, t *compose.Table) error {
	lines := make([]string, 0, t.Len())
	t.Walk(func(seq []xproto.Keysym, s string, ks xproto.Keysym) {
		names := make([]string, len(seq))
		for i, k := range seq {
			names[i] = "<" + keysyms.Name(k) + ">"
		}
		line := strings.Join(names, " ") + "\t:"
		if s != "" {
			line += fmt.Sprintf(" %q", s)
		}
		if ks != keysyms.NoSymbol {
			line += " " + keysyms.Name(ks)
		}
		lines = append(lines, line)
	})
	sort.Strings(lines)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range lines {
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
