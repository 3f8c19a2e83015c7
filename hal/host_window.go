//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"homestead/internal/buildinfo"
)

// RunWindow opens a desktop window presenting the simulated OLED and pumps
// the frame step. It blocks until the window closes or the step fails.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Homestead (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.width*4, h.disp.height*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, d.width, d.height))
		g.scratch = make([]byte, len(d.shown))
		g.fbImg = ebiten.NewImage(d.width, d.height)
	}

	d.snapshot(g.scratch)

	dst := g.img.Pix
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			v := byte(0)
			if monoGet(g.scratch, d.width, x, y) {
				v = 0xFF
			}
			j := (y*d.width + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.width, g.h.disp.height
}
