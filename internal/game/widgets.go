package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphW     = 7  // basicfont.Face7x13 advance
	glyphH     = 13 // basicfont.Face7x13 height
	titleScale = 3
	titleBufW  = 160
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx < r.x+r.w && my >= r.y && my < r.y+r.h
}

// button is a clickable rectangle. Screens build their buttons fresh every
// frame, so the same list drives both hit testing and drawing.
type button struct {
	rect
	label   string
	enabled bool
	accent  color.RGBA
	action  func()
}

func newButton(x, y, w, h int, label string, action func()) button {
	return button{rect: rect{x: x, y: y, w: w, h: h}, label: label, enabled: true, accent: accentRed, action: action}
}

func (b button) draw(screen *ebiten.Image) {
	fill := color.RGBA{R: b.accent.R / 3, G: b.accent.G / 3, B: b.accent.B / 3, A: 255}
	border := b.accent
	fg := textColor
	if !b.enabled {
		fill = color.RGBA{R: 30, G: 30, B: 30, A: 255}
		border = lockedColor
		fg = mutedColor
	}
	vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), fill, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, border, false)
	tx := b.x + (b.w-len(b.label)*glyphW)/2
	ty := b.y + (b.h+glyphH)/2 - 2
	drawText(screen, b.label, tx, ty, fg)
}

// drawText draws s with its baseline at y.
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// drawTextCentered centres s horizontally inside the main area.
func drawTextCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	drawText(screen, s, (mainW-len(s)*glyphW)/2, y, clr)
}

// drawTitle renders s into titleBuf at 1x, then blits it centred in the main
// area at titleScale.
func (g *Game) drawTitle(screen *ebiten.Image, s string, y int, clr color.Color) {
	if g.titleBuf == nil {
		g.titleBuf = ebiten.NewImage(titleBufW, glyphH+4)
	}
	g.titleBuf.Clear()
	drawText(g.titleBuf, s, 1, glyphH, clr)
	w := len(s)*glyphW + 2
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(titleScale, titleScale)
	opts.GeoM.Translate(float64((mainW-w*titleScale)/2), float64(y))
	screen.DrawImage(g.titleBuf, opts)
}

func drawPanel(screen *ebiten.Image, r rect, border color.RGBA) {
	vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), color.RGBA{R: 18, G: 10, B: 12, A: 235}, false)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1.5, border, false)
}
