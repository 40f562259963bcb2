package cli

import (
	"github.com/iburimskiy/distance-field-sketches/internal/sketch"

	"github.com/spf13/cobra"
)

// Window returns a command that opens the named sketch in a window.
func Window(name, short string, st *state) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sketch.New(name, st.cfg)
			if err != nil {
				return err
			}
			return st.run(s, st.cfg.Window)
		},
	}
}
