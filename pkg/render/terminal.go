package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// HalfBlock is the upper half block; its foreground paints the top pixel and
// its background the bottom one.
const HalfBlock = "▀"

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row holds two framebuffer rows.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: HalfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: fb.GetPixel(x, topY),
					Bg: fb.GetPixel(x, topY+1),
				},
			})
		}
	}
}
