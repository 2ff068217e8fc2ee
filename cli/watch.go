package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/xkeyboard/driver"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput/compose"
	"github.com/jmigpin/xkeyboard/util/fswatcher"
	"github.com/jmigpin/xkeyboard/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type watchOptions struct {
	dump bool
	mods string
}

func newWatchCmd(a *app) *cobra.Command {
	wo := &watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open an input window and print its key events",
		Long: `Opens a small window and prints one line per key event it receives while
focused. Layout changes and compose sequences are applied as they happen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd.OutOrStdout(), wo)
		},
	}
	cmd.Flags().BoolVar(&wo.dump, "dump", false, "dump the whole event structure")
	cmd.Flags().StringVar(&wo.mods, "mods", "", `only print events with these modifiers, e.g. "CTRL|ALT"`)
	return cmd
}

func (a *app) watch(ctx context.Context, w io.Writer, wo *watchOptions) error {
	pr, err := newEventPrinter(w, wo)
	if err != nil {
		return err
	}

	win, err := driver.NewWindow(&driver.Options{
		Display:  a.cfg.Display,
		Name:     "xkeyboard",
		Keyboard: a.keyboardOptions(),
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var composeChanged <-chan string
	if a.cfg.WatchCompose {
		if path := win.Keyboard().ComposeTable().Path; path != "" {
			fw, err := fswatcher.NewFileWatcher(path)
			if err != nil {
				return err
			}
			composeChanged = fw.Events()
			g.Go(func() error { return fw.Run(ctx) })
			g.Go(func() error {
				for {
					select {
					case <-ctx.Done():
						return nil
					case err := <-fw.Errors():
						a.logger.Warn().Err(err).Str("file", fw.Name()).Msg("compose watch")
					}
				}
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		return a.eventLoop(ctx, win, composeChanged, pr)
	})
	return g.Wait()
}

// eventLoop is the only goroutine calling the keyboard.
func (a *app) eventLoop(ctx context.Context, win driver.Window, composeChanged <-chan string, pr *eventPrinter) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-composeChanged:
			a.reloadCompose(win.Keyboard(), path)
		case ev := <-win.Events():
			out, err := win.HandleEvent(ev)
			if err != nil {
				var re *xinput.ReloadError
				if errors.As(err, &re) {
					a.logger.Error().Err(err).Msg("keeping the current keymap")
				} else {
					a.logger.Warn().Err(err).Msg("event")
				}
				continue
			}
			switch t := out.(type) {
			case *event.WindowClose:
				return nil
			case *event.KeyEvent:
				if err := pr.print(t); err != nil {
					return err
				}
			}
		}
	}
}

func (a *app) reloadCompose(kbd *xinput.Keyboard, path string) {
	locale := kbd.ComposeTable().Locale
	t, err := compose.FromFile(path, compose.Options{Locale: locale, Logger: a.logger})
	if err != nil {
		a.logger.Error().Err(err).Str("file", path).Msg("keeping the current compose table")
		return
	}
	kbd.SetComposeTable(t)
	a.logger.Info().Str("file", path).Int("sequences", t.Len()).Msg("compose table reloaded")
}

//----------

var dumpConfig = spew.ConfigState{
	Indent:                  "\t",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

type eventPrinter struct {
	w      io.Writer
	dump   bool
	mods   event.KeyModifiers
	filter bool
}

func newEventPrinter(w io.Writer, wo *watchOptions) (*eventPrinter, error) {
	pr := &eventPrinter{w: w, dump: wo.dump}
	if wo.mods != "" {
		m, err := event.ParseKeyModifiers(wo.mods)
		if err != nil {
			return nil, errors.Wrap(err, "--mods")
		}
		pr.mods, pr.filter = m, true
	}
	return pr, nil
}

func (pr *eventPrinter) print(ev *event.KeyEvent) error {
	if pr.filter && ev.Mods != pr.mods {
		return nil
	}
	if pr.dump {
		dumpConfig.Fdump(pr.w, ev)
		return nil
	}
	_, err := fmt.Fprintln(pr.w, ev)
	return err
}
