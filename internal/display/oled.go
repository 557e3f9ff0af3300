// Package display renders the device screens into a 128x64 monochrome
// framebuffer, the same geometry as the SSD1306 panel on the board.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"colorviz/internal/model"
)

const (
	Width  = 128
	Height = 64
)

const (
	menuTitle  = "Selecione o Tipo:"
	backHint   = "Voltar: btn 5"
	cursorMark = "--"
)

var face = basicfont.Face7x13

type OLED struct {
	mu    sync.Mutex
	buf   *image.Gray
	lines []string
}

func NewOLED() *OLED {
	return &OLED{buf: image.NewGray(image.Rect(0, 0, Width, Height))}
}

func (o *OLED) ShowMenu(items []string, cursor int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clearLocked()
	o.drawLocked(0, 11, menuTitle)
	for i, item := range items {
		marker := " "
		if i == cursor {
			marker = cursorMark
		}
		o.drawLocked(0, 24+i*13, fmt.Sprintf("%s %s", marker, item))
	}
}

func (o *OLED) ShowAnalysis(mode, name string, c model.RGB) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clearLocked()
	o.drawLocked(0, 11, mode)
	o.drawLocked(0, 27, name)
	o.drawLocked(0, 43, "HEX: "+c.Hex())
	o.drawLocked(0, 62, backHint)
}

// Lines returns the text drawn on the current screen, top to bottom.
func (o *OLED) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.lines))
	copy(out, o.lines)
	return out
}

// Frame returns a copy of the framebuffer. Pixels are either 0 or 255.
func (o *OLED) Frame() *image.Gray {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := image.NewGray(o.buf.Rect)
	copy(out.Pix, o.buf.Pix)
	return out
}

// WritePNG encodes the framebuffer upscaled by scale without smoothing.
func (o *OLED) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	img := imaging.Resize(o.Frame(), Width*scale, Height*scale, imaging.NearestNeighbor)
	return imaging.Encode(w, img, imaging.PNG)
}

// PageBuffer returns the framebuffer in SSD1306 GDDRAM order, ready for a
// full-screen data write.
func (o *OLED) PageBuffer() []byte {
	return EncodeSSD1306(o.Frame())
}

// EncodeSSD1306 packs img into 8-row pages, one byte per column per page with
// the top row in bit 0. Pixels brighter than mid-gray are lit.
func EncodeSSD1306(img *image.Gray) []byte {
	b := img.Bounds()
	pages := (b.Dy() + 7) / 8
	out := make([]byte, pages*b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y).Y > 127 {
				out[(y/8)*b.Dx()+x] |= 1 << uint(y%8)
			}
		}
	}
	return out
}

func (o *OLED) clearLocked() {
	draw.Draw(o.buf, o.buf.Rect, image.Black, image.Point{}, draw.Src)
	o.lines = o.lines[:0]
}

func (o *OLED) drawLocked(x, baseline int, s string) {
	d := &font.Drawer{
		Dst:  o.buf,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
	o.lines = append(o.lines, s)
}

// WriteSwatchPNG encodes a size x size square filled with c.
func WriteSwatchPNG(w io.Writer, c model.RGB, size int) error {
	if size < 1 {
		size = 1
	}
	img := imaging.New(size, size, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	return imaging.Encode(w, img, imaging.PNG)
}
