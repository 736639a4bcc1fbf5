package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
)

// View holds presentation-only values that are not part of the simulation.
type View struct {
	Best int // Best score of this session
}

// viewport maps playfield units onto the screen area between the HUD row
// and the ground row.
type viewport struct {
	top    int
	width  int
	height int
	sx, sy float64
}

func newViewport(dst *core.Screen, cfg config.FlappyConfig) viewport {
	v := viewport{
		top:    1,
		width:  dst.Width(),
		height: core.Max(dst.Height()-2, 0),
	}
	if cfg.Playfield.Width > 0 {
		v.sx = float64(v.width) / cfg.Playfield.Width
	}
	if cfg.Playfield.Height > 0 {
		v.sy = float64(v.height) / cfg.Playfield.Height
	}
	return v
}

// cells converts a playfield rectangle into the screen cells it touches.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	y0 = core.Clamp(y0, 0, v.height)
	y1 = core.Clamp(y1, 0, v.height)
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

// Render draws st onto dst. It only reads its inputs.
func Render(dst *core.Screen, st State, cfg config.FlappyConfig, view View) {
	dst.Clear()
	vp := newViewport(dst, cfg)

	for _, o := range st.Obstacles {
		drawPipe(dst, vp, o, cfg)
	}

	drawBird(dst, vp, birdRect(cfg, st.Bird), st.Phase)

	if dst.Height() > 1 {
		dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorOrange)
	}

	score := fmt.Sprintf(" Score: %d ", st.Score)
	dst.DrawTextColored(2, 0, score, core.ColorBrightWhite)
	if view.Best > 0 {
		best := fmt.Sprintf(" Best: %d ", view.Best)
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(best)-2, 0, best, core.ColorGray)
	}

	switch st.Phase {
	case PhaseNotStarted:
		drawMessage(dst, "Press Space to Flap", "Avoid the Pipes!", core.ColorCyan)
	case PhaseOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press R to restart", st.Score), core.ColorBrightRed)
	}
}

func drawPipe(dst *core.Screen, vp viewport, o Obstacle, cfg config.FlappyConfig) {
	top := vp.cells(o.TopRect(cfg))
	bottom := vp.cells(o.BottomRect(cfg))

	dst.DrawRect(top, PipeChar, core.ColorGreen)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	}

	dst.DrawRect(bottom, PipeChar, core.ColorGreen)
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, vp viewport, r core.RectF, phase Phase) {
	color := core.ColorBrightYellow
	if phase == PhaseOver {
		color = core.ColorGray
	}

	cells := vp.cells(r)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			dst.SetColored(x, y, BirdChar, color)
		}
	}
	if cells.W > 0 && cells.H > 0 {
		dst.SetColored(cells.Right()-1, cells.Y, BirdBeakChar, core.ColorOrange)
	}
}

// drawMessage draws a boxed two-line message in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
