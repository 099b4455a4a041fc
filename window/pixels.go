package window

import (
	"image/color"

	"github.com/sheikhrachel/conway-grid/model"
)

// fillRGBA converts the grid into row-major RGBA pixels in buf, which must
// hold 4*width*height bytes.
func fillRGBA(buf []byte, g *model.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	width := g.GetWidth()
	for row := range g.GetHeight() {
		for col := range width {
			base := (row*width + col) * 4
			if g.Get(row, col).IsAlive() {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
