package flappy

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Minimum screen size for a playable picture.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▓'
	GrassChar     = '▔'
)

// birdFrames is the wing cycle, indexed by the animation frame.
var birdFrames = []string{"^o>", "-o>", "vo>", "-o>"}

const deadBird = "xo>"

// projection maps world units (origin centered, y up) onto screen cells (origin top-left, y down).
type projection struct {
	w, h         int
	worldW       float64
	worldH       float64
	halfW, halfH float64
}

func newProjection(world core.Vec2, w, h int) projection {
	return projection{
		w:      w,
		h:      h,
		worldW: world.X,
		worldH: world.Y,
		halfW:  world.X / 2,
		halfH:  world.Y / 2,
	}
}

// X returns the column containing world x.
func (p projection) X(x float64) int {
	return int(math.Floor((x + p.halfW) * float64(p.w) / p.worldW))
}

// Y returns the row containing world y.
func (p projection) Y(y float64) int {
	return int(math.Floor((p.halfH - y) * float64(p.h) / p.worldH))
}

// Rect returns the cells covered by a world box. Non-empty boxes cover at least one cell.
func (p projection) Rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := p.X(lo.X), p.X(hi.X)
	y0, y1 := p.Y(hi.Y), p.Y(lo.Y)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.sim.Snapshot())
}

// RenderSnapshot draws a snapshot into dst. It only reads the snapshot.
func RenderSnapshot(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	proj := newProjection(snap.World, dst.Width(), dst.Height())

	for _, p := range snap.Pipes {
		drawPipe(dst, proj, p)
	}
	if snap.Ground.Present {
		drawGround(dst, proj, snap.Ground.Box)
	}
	if snap.Bird.Present {
		drawBird(dst, proj, snap.Bird)
	}

	drawHUD(dst, snap)
	for _, l := range snap.Labels {
		if l.Kind != sim.LabelScore {
			drawMessage(dst, l)
		}
	}
}

func renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
}

// drawPipe fills the pipe body and puts a cap on the edge facing the gap.
// Pipes centered above the horizon are top pipes.
func drawPipe(dst *core.Screen, proj projection, p sim.PipeView) {
	r := proj.Rect(p.Box)
	dst.DrawRect(r, PipeChar, core.ColorGreen)

	if p.Box.Center.Y >= 0 {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawGround(dst *core.Screen, proj projection, b core.Box) {
	r := proj.Rect(b)
	// The ground always reaches the bottom row so short screens still show it.
	if r.Bottom() < dst.Height() {
		r.H = dst.Height() - r.Y
	}
	dst.DrawRect(r, GroundChar, core.ColorOrange)
	dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorBrightGreen)
}

func drawBird(dst *core.Screen, proj projection, b sim.BirdView) {
	sprite, color := deadBird, core.ColorRed
	if b.Alive {
		sprite, color = birdFrames[b.Frame%len(birdFrames)], core.ColorBrightYellow
	}
	x := proj.X(b.Pos.X) - len(sprite)/2
	dst.DrawTextColored(x, proj.Y(b.Pos.Y), sprite, color)
}

// drawHUD draws the live score in the top-left corner and the speed on the right.
func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	if text, ok := snap.Label(sim.LabelScore); ok {
		dst.DrawTextColored(2, 0, " "+text+" ", core.ColorBrightWhite)
	}
	if snap.Score.SpeedMultiplier > 1 {
		speed := fmt.Sprintf(" speed x%.2f ", snap.Score.SpeedMultiplier)
		dst.DrawTextColored(dst.Width()-len(speed)-2, 0, speed, core.ColorGray)
	}
}

// drawMessage draws a multi-line label in a box in the center of the screen.
func drawMessage(dst *core.Screen, l sim.Label) {
	lines := strings.Split(l.Text, "\n")

	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len([]rune(line)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	color := labelColor(l.Kind)
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, boxY+1+i, line, color)
	}
}

func labelColor(kind sim.LabelKind) core.Color {
	switch kind {
	case sim.LabelGameOver:
		return core.ColorRed
	case sim.LabelPause:
		return core.ColorYellow
	default:
		return core.ColorCyan
	}
}
