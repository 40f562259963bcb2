package game

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/iburimskiy/distance-field-sketches/internal/render"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
)

func (g *game) saveScreenshot(img image.Image) error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(fmt.Sprintf("%s-%s.png", g.sketch.Name(), time.Now().Format("20060102-150405"))),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := render.SavePNG(filename, img); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	log.Info().Str("path", filename).Msg("screenshot saved")
	return nil
}
