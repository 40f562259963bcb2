// Package game runs a sketch in a desktop window on top of ebiten.
package game

import (
	"errors"
	"fmt"
	"image"

	"github.com/iburimskiy/distance-field-sketches/internal/config"
	"github.com/iburimskiy/distance-field-sketches/internal/field"
	"github.com/iburimskiy/distance-field-sketches/internal/sketch"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

type game struct {
	sketch sketch.Sketch
	win    config.Window
	canvas screenCanvas

	// live canvas size from Layout
	width, height int
	setupDone     bool

	touches []ebiten.TouchID

	// screenshot is requested in Update, captured in Draw, saved in the
	// following Update
	captureNext bool
	shot        *image.RGBA

	paused      bool
	showOverlay bool
	lastErr     error
}

func newGame(s sketch.Sketch, win config.Window) *game {
	return &game{
		sketch:      s,
		win:         win,
		width:       win.Width,
		height:      win.Height,
		showOverlay: true,
	}
}

// Run opens the window and blocks until it is closed or Esc/Q is pressed.
func Run(s sketch.Sketch, win config.Window) error {
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s (Space: pause, S: screenshot, H: overlay, Esc/Q: quit)", win.Title, s.Name()))
	if win.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	log.Info().Str("sketch", s.Name()).Int("width", win.Width).Int("height", win.Height).Msg("starting sketch")
	if err := ebiten.RunGame(newGame(s, win)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info().Str("sketch", s.Name()).Msg("sketch closed")
	return nil
}

func (g *game) Update() error {
	if !g.setupDone {
		g.sketch.Setup(float64(g.width), float64(g.height))
		g.setupDone = true
		log.Debug().Int("width", g.width).Int("height", g.height).Msg("sketch set up")
	}

	if g.shot != nil {
		shot := g.shot
		g.shot = nil
		if err := g.saveScreenshot(shot); err != nil {
			g.lastErr = err
			log.Error().Err(err).Msg("error saving screenshot")
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
		log.Debug().Bool("paused", g.paused).Msg("pause toggled")
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.captureNext = true
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showOverlay = !g.showOverlay
	}

	if !g.paused {
		g.sketch.Update(g.input())
	}
	return nil
}

// input samples the pointer. A touch overrides the mouse.
func (g *game) input() sketch.Input {
	mx, my := ebiten.CursorPosition()
	in := sketch.Input{
		Pointer: field.Point{X: float64(mx), Y: float64(my)},
		Engaged: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Width:   float64(g.width),
		Height:  float64(g.height),
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		tx, ty := ebiten.TouchPosition(g.touches[0])
		in.Pointer = field.Point{X: float64(tx), Y: float64(ty)}
		in.Engaged = true
	}
	return in
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.reset(screen)
	g.sketch.Draw(&g.canvas)

	if g.captureNext {
		g.captureNext = false
		img := image.NewRGBA(screen.Bounds())
		screen.ReadPixels(img.Pix)
		g.shot = img
	}

	if !g.showOverlay {
		return
	}
	status := fmt.Sprintf("%s  %.0f fps", g.sketch.Name(), ebiten.ActualFPS())
	if g.paused {
		status += "  paused"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.win.Resizable {
		return g.win.Width, g.win.Height
	}
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
