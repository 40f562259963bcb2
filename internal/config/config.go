// Package config contains the sketch Config and the code to load it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SKETCH"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  Window  `mapstructure:"window" json:"window" toml:"window" yaml:"window"`
	Grid    Grid    `mapstructure:"grid" json:"grid" toml:"grid" yaml:"grid"`
	Field   Field   `mapstructure:"field" json:"field" toml:"field" yaml:"field"`
	Tracker Tracker `mapstructure:"tracker" json:"tracker" toml:"tracker" yaml:"tracker"`
	Log     Log     `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
}

type Window struct {
	Width     int    `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height    int    `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	Title     string `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
	Resizable bool   `mapstructure:"resizable" json:"resizable" toml:"resizable" yaml:"resizable"`
}

// Grid configures the circle grid sketch.
type Grid struct {
	Resolution float64 `mapstructure:"resolution" json:"resolution" toml:"resolution" yaml:"resolution"`
	Offset     float64 `mapstructure:"offset" json:"offset" toml:"offset" yaml:"offset"`
	Background string  `mapstructure:"background" json:"background" toml:"background" yaml:"background"`
	From       string  `mapstructure:"from" json:"from" toml:"from" yaml:"from"`
	To         string  `mapstructure:"to" json:"to" toml:"to" yaml:"to"`
	Inner      string  `mapstructure:"inner" json:"inner" toml:"inner" yaml:"inner"`
}

// Field configures the vector field sketch.
type Field struct {
	Resolution float64 `mapstructure:"resolution" json:"resolution" toml:"resolution" yaml:"resolution"`
	Offset     float64 `mapstructure:"offset" json:"offset" toml:"offset" yaml:"offset"`
	// Jitter is the maximum random displacement of each point at setup, as a
	// fraction of Resolution. 1 scatters points anywhere inside their cell.
	Jitter float64 `mapstructure:"jitter" json:"jitter" toml:"jitter" yaml:"jitter"`
	// Seed for the jitter. Zero seeds from the clock.
	Seed       uint64  `mapstructure:"seed" json:"seed" toml:"seed" yaml:"seed"`
	LineLength float64 `mapstructure:"line_length" json:"line_length" toml:"line_length" yaml:"line_length"`
	MaxWeight  float64 `mapstructure:"max_weight" json:"max_weight" toml:"max_weight" yaml:"max_weight"`
	// Curl in radians.
	Curl       float64 `mapstructure:"curl" json:"curl" toml:"curl" yaml:"curl"`
	Background string  `mapstructure:"background" json:"background" toml:"background" yaml:"background"`
	From       string  `mapstructure:"from" json:"from" toml:"from" yaml:"from"`
	To         string  `mapstructure:"to" json:"to" toml:"to" yaml:"to"`
}

type Tracker struct {
	StartX   float64 `mapstructure:"start_x" json:"start_x" toml:"start_x" yaml:"start_x"`
	StartY   float64 `mapstructure:"start_y" json:"start_y" toml:"start_y" yaml:"start_y"`
	Diameter float64 `mapstructure:"diameter" json:"diameter" toml:"diameter" yaml:"diameter"`
	Gain     float64 `mapstructure:"gain" json:"gain" toml:"gain" yaml:"gain"`
	DeadZone float64 `mapstructure:"dead_zone" json:"dead_zone" toml:"dead_zone" yaml:"dead_zone"`
	Color    string  `mapstructure:"color" json:"color" toml:"color" yaml:"color"`
}

type Log struct {
	// Level is one of trace, debug, info, warn, error, none.
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	// File is an optional log file, logs go to stdout when empty.
	File string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Default returns the values the sketches were designed with.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "Distance field sketches",
			Resizable: true,
		},
		Grid: Grid{
			Resolution: 50,
			Offset:     0.2,
			Background: "#0794c5",
			From:       "#c83e77",
			To:         "#35b0c9",
			Inner:      "#6e3771",
		},
		Field: Field{
			Resolution: 50,
			Offset:     0.1,
			Jitter:     1,
			LineLength: 15,
			MaxWeight:  6,
			Background: "#c8c8c8",
			From:       "#c800e6",
			To:         "#c8c8c8",
		},
		Tracker: Tracker{
			StartX:   400,
			StartY:   400,
			Diameter: 20,
			Gain:     25,
			DeadZone: 20,
			Color:    "#646464",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefineFlags registers the flags that override config file values.
func DefineFlags(cmd *cobra.Command) {
	d := Default()
	cmd.PersistentFlags().IntP("window.width", "W", d.Window.Width, "window width in pixels")
	cmd.PersistentFlags().IntP("window.height", "H", d.Window.Height, "window height in pixels")
	cmd.PersistentFlags().Float64P("grid.resolution", "", d.Grid.Resolution, "spacing between grid circles")
	cmd.PersistentFlags().Float64P("field.resolution", "", d.Field.Resolution, "spacing between field lines")
	cmd.PersistentFlags().Uint64P("field.seed", "", d.Field.Seed, "jitter seed, 0 picks one from the clock")
	cmd.PersistentFlags().Float64P("field.curl", "", d.Field.Curl, "angle in radians added to every line heading")
	cmd.PersistentFlags().StringP("log.level", "", d.Log.Level, "set the log level: trace, debug, info, warn, error or none")
	cmd.PersistentFlags().StringP("log.file", "", d.Log.File, "optional log file - if not specified logs go to STDOUT")
}

var bindPFlags = []string{
	"window.width", "window.height", "grid.resolution", "field.resolution",
	"field.seed", "field.curl", "log.level", "log.file",
}

// GetConfig merges defaults, the optional config file, SKETCH_* environment
// variables and flags of cmd, in increasing priority.
func GetConfig(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, flag := range bindPFlags {
			if f := cmd.Flag(flag); f != nil {
				_ = v.BindPFlag(flag, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				return Config{}, fmt.Errorf("config file %s not found: %w", configFile, err)
			}
			return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	var m map[string]any
	_ = mapstructure.Decode(d, &m)
	for section, values := range m {
		sub, ok := values.(map[string]any)
		if !ok {
			v.SetDefault(section, values)
			continue
		}
		for k, val := range sub {
			v.SetDefault(section+"."+k, val)
		}
	}
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Grid.Resolution <= 0 {
		return fmt.Errorf("%w: grid.resolution must be positive", ErrInvalid)
	}
	if c.Field.Resolution <= 0 {
		return fmt.Errorf("%w: field.resolution must be positive", ErrInvalid)
	}
	if c.Field.Jitter < 0 || c.Field.Jitter > 1 {
		return fmt.Errorf("%w: field.jitter must be within [0, 1]", ErrInvalid)
	}
	if c.Field.LineLength <= 0 || c.Field.MaxWeight <= 0 {
		return fmt.Errorf("%w: field.line_length and field.max_weight must be positive", ErrInvalid)
	}
	if c.Tracker.DeadZone < 0 || c.Tracker.Gain < 0 {
		return fmt.Errorf("%w: tracker.gain and tracker.dead_zone must not be negative", ErrInvalid)
	}
	colors := map[string]string{
		"grid.background":  c.Grid.Background,
		"grid.from":        c.Grid.From,
		"grid.to":          c.Grid.To,
		"grid.inner":       c.Grid.Inner,
		"field.background": c.Field.Background,
		"field.from":       c.Field.From,
		"field.to":         c.Field.To,
		"tracker.color":    c.Tracker.Color,
	}
	for key, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: %s: %q is not a #rrggbb color", ErrInvalid, key, hex)
		}
	}
	return nil
}
