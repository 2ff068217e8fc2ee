// Package cli implements the xkeyboard commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jmigpin/xkeyboard/config"
	"github.com/jmigpin/xkeyboard/driver/xdriver/xinput"
	"github.com/jmigpin/xkeyboard/util/logutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	logger     zerolog.Logger
}

// flag name -> config key
var configFlags = map[string]string{
	"display":       "display",
	"device":        "device",
	"locale":        "locale",
	"compose-file":  "compose-file",
	"watch-compose": "watch-compose",
	"fonts":         "fonts",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "xkeyboard",
		Short: "X11 keyboard input translation",
		Long: `Translates X11 key events into normalized key events, following the
XKEYBOARD layout of the keyboard and running compose sequences.

Settings come from flags, XKEYBOARD_* environment variables (XKEYBOARD_LOG_LEVEL
for log.level) and an optional xkeyboard.toml in the user config directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: <user config dir>/xkeyboard/xkeyboard.toml)")
	pf.String("display", "", "X display (default: $DISPLAY)")
	pf.String("device", "core", `keyboard device: "core" or a device id`)
	pf.String("locale", "", "locale for the compose table (default: from LC_ALL, LC_CTYPE, LANG)")
	pf.String("compose-file", "", "compose file to use instead of the locale one")
	pf.Bool("watch-compose", false, "reload the compose file when it changes")
	pf.String("fonts", "", "font configuration file (toml)")
	pf.String("log-level", "info", "log level")
	pf.String("log-format", "auto", `log format: "console", "json" or "auto"`)
	if err := bindFlags(a.v, pf); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		newWatchCmd(a),
		newComposeCmd(a),
		newFontsCmd(a),
	)
	return cmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range configFlags {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag %v", name)
		}
	}
	return nil
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := logutil.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) keyboardOptions() xinput.Options {
	return xinput.Options{
		Device:      a.cfg.Device,
		Locale:      a.cfg.Locale,
		ComposeFile: a.cfg.ComposeFile,
		Logger:      a.logger,
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
