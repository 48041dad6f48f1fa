// Package config loads timefield settings from defaults, an optional config
// file, TIMEFIELD_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stigoleg/timefield/internal/clock"
	"github.com/stigoleg/timefield/internal/timepicker"
)

const (
	ErrDomain = "config"
	envPrefix = "TIMEFIELD"
	appName   = "timefield"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Field FieldConfig `mapstructure:"field"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// FieldConfig describes the bound field and how the picker presents it.
type FieldConfig struct {
	Name        string `mapstructure:"name"`
	ClassName   string `mapstructure:"class_name"`
	Placeholder string `mapstructure:"placeholder"`
	// Value is the initial value. Any form clock.ParseInput accepts is
	// allowed; Load stores the canonical "HH:MM" form.
	Value    string `mapstructure:"value"`
	Required bool   `mapstructure:"required"`
	Width    int    `mapstructure:"width"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale    string `mapstructure:"locale"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"field.name":        "name",
	"field.class_name":  "class",
	"field.placeholder": "placeholder",
	"field.value":       "value",
	"field.required":    "required",
	"field.width":       "width",
	"ui.locale":         "locale",
	"ui.alt_screen":     "alt-screen",
	"log.file":          "log-file",
	"log.level":         "log-level",
}

var logLevels = []string{"debug", "info", "warn", "error"}

// RegisterFlags defines the flags Load understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("name", "n", "time", "Name of the form field")
	fs.String("class", "", "Style preset(s) for the picker: bordered, compact, plain")
	fs.StringP("placeholder", "p", "", "Text shown while no time is chosen")
	fs.StringP("value", "V", "", "Initial value (e.g. \"22:30\" or \"10:30PM\")")
	fs.Bool("required", false, "Refuse to submit an empty value")
	fs.Int("width", 0, "Truncate the summary line to this many cells")
	fs.StringP("locale", "l", "en", "Label language (en, ar)")
	fs.Bool("alt-screen", false, "Run in the alternate screen buffer")
	fs.String("log-file", "", "Write debug logs to this file")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
}

// Load reads configuration. path names an explicit config file; when empty
// the user config directory is searched for timefield/config.*. flags may be
// nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("field.name", "time")
	v.SetDefault("field.class_name", "")
	v.SetDefault("field.placeholder", "")
	v.SetDefault("field.value", "")
	v.SetDefault("field.required", false)
	v.SetDefault("field.width", 0)
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.alt_screen", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, oops.In(ErrDomain).With("path", path).Wrapf(err, "read config")
		}
	}

	if flags != nil {
		for cfgKey, flagName := range flagKeys {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(cfgKey, f); err != nil {
					return Config{}, oops.In(ErrDomain).With("flag", flagName).Wrapf(err, "bind flag")
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, oops.In(ErrDomain).Wrapf(err, "unmarshal config")
	}

	canonical, err := clock.ParseInput(c.Field.Value)
	if err != nil {
		return Config{}, err
	}
	c.Field.Value = canonical

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Field.Name) == "" {
		return invalid("field.name", c.Field.Name, "field name must not be empty")
	}
	if c.Field.Width < 0 {
		return invalid("field.width", c.Field.Width, "width must not be negative")
	}
	if c.UI.Locale != "" && !slices.Contains(timepicker.Locales, timepicker.Language(c.UI.Locale)) {
		return invalid("ui.locale", c.UI.Locale, "unknown locale")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return invalid("log.level", c.Log.Level, "unknown log level")
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func invalid(key string, value any, msg string) error {
	return oops.
		In(ErrDomain).
		With("key", key, "value", value).
		Wrapf(ErrInvalid, "%s: %s", key, msg)
}
