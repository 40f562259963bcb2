package cli

import (
	"fmt"

	"github.com/iburimskiy/distance-field-sketches/internal/field"
	"github.com/iburimskiy/distance-field-sketches/internal/render"
	"github.com/iburimskiy/distance-field-sketches/internal/sketch"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	out      string
	frames   int
	pointerX float64
	pointerY float64
	engaged  bool
}

// Render returns the headless render command.
func Render(st *state) *cobra.Command {
	f := renderFlags{}
	cmd := &cobra.Command{
		Use:       "render <grid|field>",
		Short:     "Render a sketch frame to a PNG file without opening a window",
		Args:      cobra.ExactArgs(1),
		ValidArgs: sketch.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(st, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output PNG path (default <sketch>.png)")
	cmd.Flags().IntVarP(&f.frames, "frames", "n", 1, "number of frames to step before drawing")
	cmd.Flags().Float64VarP(&f.pointerX, "pointer-x", "x", 0, "pointer x position")
	cmd.Flags().Float64VarP(&f.pointerY, "pointer-y", "y", 0, "pointer y position")
	cmd.Flags().BoolVarP(&f.engaged, "engaged", "e", false, "hold the pointer pressed on every frame")
	return cmd
}

func runRender(st *state, name string, f renderFlags) error {
	s, err := sketch.New(name, st.cfg)
	if err != nil {
		return err
	}
	out := f.out
	if out == "" {
		out = name + ".png"
	}
	c := render.Run(s, render.Options{
		Width:   st.cfg.Window.Width,
		Height:  st.cfg.Window.Height,
		Frames:  f.frames,
		Pointer: field.Point{X: f.pointerX, Y: f.pointerY},
		Engaged: f.engaged,
	})
	if err := c.SavePNG(out); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	log.Info().Str("sketch", name).Str("path", out).Msg("frame written")
	return nil
}
