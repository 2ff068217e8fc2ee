// Package config holds the program configuration, read with viper from
// flags, XKEYBOARD_* environment variables and an optional toml file, plus
// the font configuration model.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmigpin/xkeyboard/util/logutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "XKEYBOARD"
	configFileName = "xkeyboard"
)

type Config struct {
	Display      string         `mapstructure:"display"`
	Device       string         `mapstructure:"device"`
	Locale       string         `mapstructure:"locale"`
	ComposeFile  string         `mapstructure:"compose-file"`
	WatchCompose bool           `mapstructure:"watch-compose"`
	Fonts        string         `mapstructure:"fonts"`
	Log          logutil.Config `mapstructure:"log"`

	// resolved at load time, not configurable
	FontLocator FontLocatorSelection `mapstructure:"-"`
}

// NewViper returns a viper instance with the defaults and environment
// bindings set. Keys like "log.level" read XKEYBOARD_LOG_LEVEL.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	lc := logutil.DefaultConfig()
	v.SetDefault("display", "")
	v.SetDefault("device", "core")
	v.SetDefault("locale", "")
	v.SetDefault("compose-file", "")
	v.SetDefault("watch-compose", false)
	v.SetDefault("fonts", "")
	v.SetDefault("log.level", lc.Level)
	v.SetDefault("log.format", lc.Format)
}

// Load reads the config file, if any, and decodes the configuration. An
// empty filename looks for xkeyboard.toml in the user config dir; not
// finding it there is not an error.
func Load(v *viper.Viper, filename string) (*Config, error) {
	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("toml")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if filename != "" || !errors.As(err, &nf) {
			return nil, errors.Wrap(err, "config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	cfg.FontLocator = FontLocatorFor(runtime.GOOS)
	return cfg, nil
}

func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
