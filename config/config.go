// Package config loads the settings of the bagdemo driver from defaults, an
// optional YAML file, BAGDEMO_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rdeusser/bag/bag"
	"github.com/rdeusser/bag/zappretty"
)

const envPrefix = "BAGDEMO"

var ErrInvalidCapacity = errors.New("capacity must not be negative")

type Config struct {
	Log   LogConfig `mapstructure:"log"`
	Left  BagConfig `mapstructure:"left"`
	Right BagConfig `mapstructure:"right"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type BagConfig struct {
	Kind      bag.Kind `mapstructure:"kind"`
	Capacity  int      `mapstructure:"capacity"`
	Resizable bool     `mapstructure:"resizable"`
	Entries   []string `mapstructure:"entries"`
}

// Options returns the array bag options described by c.
func (c BagConfig) Options() []bag.Option {
	opts := []bag.Option{bag.WithCapacity(c.Capacity)}
	if c.Resizable {
		opts = append(opts, bag.WithResizing())
	}

	return opts
}

// Build returns a bag of the configured kind holding the configured entries.
func (c BagConfig) Build() (bag.Interface[string], error) {
	b, err := bag.New[string](c.Kind, c.Options()...)
	if err != nil {
		return nil, err
	}

	for _, entry := range c.Entries {
		if err := b.Add(entry); err != nil {
			return nil, fmt.Errorf("adding %q: %w", entry, err)
		}
	}

	return b, nil
}

func (c BagConfig) validate() error {
	if !bag.IsKind(c.Kind.String()) {
		return fmt.Errorf("%w: %d", bag.ErrInvalidKind, c.Kind)
	}

	if c.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}

	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Left.validate(); err != nil {
		return fmt.Errorf("left: %w", err)
	}

	if err := c.Right.validate(); err != nil {
		return fmt.Errorf("right: %w", err)
	}

	return nil
}

// LoggerOptions returns the zappretty options described by c.
func (c *Config) LoggerOptions() zappretty.Options {
	return zappretty.Options{
		Level:  c.Log.Level,
		Pretty: c.Log.Pretty,
	}
}

// RegisterFlags adds the driver's flags to fs. Flag names mirror the config
// keys with dots replaced by dashes.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "", "minimum log level")
	fs.Bool("log-pretty", false, "colored log output")

	for _, side := range []string{"left", "right"} {
		fs.Var(new(bag.Kind), side+"-kind", fmt.Sprintf("backing of the %s bag (%s)", side, kindNames()))
		fs.Int(side+"-capacity", 0, fmt.Sprintf("capacity of the %s bag when array backed", side))
		fs.Bool(side+"-resizable", false, fmt.Sprintf("let the %s array bag grow", side))
		fs.StringSlice(side+"-entries", nil, fmt.Sprintf("entries of the %s bag", side))
	}
}

// Load reads the configuration. fs may be nil; otherwise only flags the user
// set override lower layers.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}

		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("left.kind", bag.KindArray.String())
	v.SetDefault("left.capacity", bag.DefaultCapacity)
	v.SetDefault("left.resizable", false)
	v.SetDefault("left.entries", []string{"A", "B", "B", "B"})

	v.SetDefault("right.kind", bag.KindArray.String())
	v.SetDefault("right.capacity", bag.DefaultCapacity)
	v.SetDefault("right.resizable", false)
	v.SetDefault("right.entries", []string{"A", "B", "B", "D", "E"})
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error

	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}

		key := strings.Replace(f.Name, "-", ".", 1)
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("binding flag %s: %w", f.Name, bindErr)
		}
	})

	return err
}

func kindNames() string {
	names := make([]string, 0, len(bag.KindList()))
	for _, kind := range bag.KindList() {
		names = append(names, kind.String())
	}

	return strings.Join(names, ", ")
}
