// Package cli wires the sketches to cobra commands. The window backend is
// passed in by main so that this package builds without a display stack.
package cli

import (
	"github.com/iburimskiy/distance-field-sketches/internal/config"
	"github.com/iburimskiy/distance-field-sketches/internal/logging"
	"github.com/iburimskiy/distance-field-sketches/internal/sketch"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Runner shows a sketch in a window until it is closed.
type Runner func(s sketch.Sketch, win config.Window) error

type state struct {
	configFile string
	cfg        config.Config
	run        Runner
	closeLog   func()
}

// Root builds the command tree. The returned func releases resources opened
// while loading config, such as the log file, and must be called after
// Execute whatever its result.
func Root(run Runner) (*cobra.Command, func()) {
	st := &state{run: run}
	root := &cobra.Command{
		Use:           "sketches",
		Short:         "Distance field sketches",
		Long:          "Generative sketches driven by the distance between a lattice of points and a moving reference point",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&st.configFile, "config", "c", "", "path to config file (JSON, YAML or TOML)")
	config.DefineFlags(root)

	root.AddCommand(Window("grid", "Circle grid tinted by distance to the pointer", st))
	root.AddCommand(Window("field", "Line field turning toward an object that chases the pointer", st))
	root.AddCommand(Render(st))
	root.AddCommand(Version())
	return root, st.close
}

func (st *state) load(cmd *cobra.Command) error {
	cfg, err := config.GetConfig(cmd, st.configFile)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	st.cfg, st.closeLog = cfg, closeLog
	if logging.Enabled(zerolog.DebugLevel) {
		log.Debug().Interface("config", cfg).Msg("config loaded")
	}
	return nil
}

func (st *state) close() {
	if st.closeLog != nil {
		st.closeLog()
		st.closeLog = nil
	}
}
