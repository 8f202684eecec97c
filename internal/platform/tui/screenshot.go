package tui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cell size in pixels, from the 7x13 bitmap font.
const (
	cellW = 7
	cellH = 13
)

var background = colornames.Black

// palette maps core.Color to screenshot colors, close to the terminal defaults.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      colornames.Lightgray,
	core.ColorRed:          colornames.Red,
	core.ColorGreen:        colornames.Green,
	core.ColorYellow:       colornames.Goldenrod,
	core.ColorCyan:         colornames.Cyan,
	core.ColorWhite:        colornames.Lightgray,
	core.ColorBrightGreen:  colornames.Lime,
	core.ColorBrightYellow: colornames.Yellow,
	core.ColorBrightWhite:  colornames.White,
	core.ColorOrange:       colornames.Darkorange,
	core.ColorGray:         colornames.Gray,
}

// ScreenshotName returns the file name for a screenshot taken at t.
func ScreenshotName(t time.Time) string {
	return t.Format("screenshot-20060102-150405.png")
}

// DefaultScreenshotDir returns ~/.flappy/screenshots, or empty if home is unavailable.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "screenshots")
}

// maxNameAttempts bounds the numbered names tried when screenshots share a second.
const maxNameAttempts = 100

// SaveScreenshot writes the screen as a PNG into dir and returns the file path.
// Existing files are never overwritten; a second shot in the same second gets
// a numbered name. A file that fails to encode is removed.
func SaveScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create %s: %w", dir, err)
	}

	f, path, err := createScreenshotFile(dir, now)
	if err != nil {
		return "", err
	}

	if err := EncodePNG(f, s); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// createScreenshotFile creates the first free name for a screenshot taken at now.
func createScreenshotFile(dir string, now time.Time) (*os.File, string, error) {
	base := ScreenshotName(now)
	stem := strings.TrimSuffix(base, ".png")
	for i := 0; i < maxNameAttempts; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s-%d.png", stem, i)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("screenshot: %w", err)
		}
	}
	return nil, "", fmt.Errorf("screenshot: no free name for %s in %s", base, dir)
}

// EncodePNG rasterizes the screen with a bitmap font and encodes it as PNG.
func EncodePNG(w io.Writer, s *core.Screen) error {
	if err := png.Encode(w, Rasterize(s)); err != nil {
		return fmt.Errorf("screenshot: encode: %w", err)
	}
	return nil
}

// Rasterize draws the screen into an image, one 7x13 pixel block per cell.
func Rasterize(s *core.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width()*cellW, s.Height()*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			drawCell(img, d, x, y, s.GetCell(x, y))
		}
	}
	return img
}

func drawCell(img *image.RGBA, d *font.Drawer, x, y int, c core.Cell) {
	col, ok := palette[c.Color]
	if !ok {
		col = palette[core.ColorDefault]
	}
	src := image.NewUniform(col)
	r := image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)

	// Block elements are filled rather than drawn from the font, which has no glyphs for them.
	switch c.Rune {
	case ' ':
		return
	case '█', '▓':
	case '▀':
		r.Max.Y = r.Min.Y + cellH/2
	case '▄':
		r.Min.Y = r.Max.Y - cellH/2
	case '▔':
		r.Max.Y = r.Min.Y + 2
	default:
		d.Src = src
		d.Dot = fixed.P(x*cellW, y*cellH+basicfont.Face7x13.Ascent)
		d.DrawString(string(asciiFallback(c.Rune)))
		return
	}
	draw.Draw(img, r, src, image.Point{}, draw.Src)
}

// asciiFallback replaces box-drawing runes with the nearest ASCII.
func asciiFallback(r rune) rune {
	switch r {
	case '─':
		return '-'
	case '│':
		return '|'
	case '┌', '┐', '└', '┘':
		return '+'
	}
	if r > '~' {
		return '?'
	}
	return r
}
