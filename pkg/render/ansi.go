package render

import (
	"strconv"
	"strings"
)

const (
	csi   = "\x1b["
	reset = csi + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return csi + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ANSI writes the framebuffer as truecolor half-block rows, two pixel rows
// per line, starting at the top-left of the screen. SGR codes are only
// emitted when a cell's colors differ from the previous cell.
func (fb *Framebuffer) ANSI(sb *strings.Builder) {
	rows := (fb.Height + 1) / 2
	sb.Grow(rows * fb.Width * 24)
	for row := 0; row < rows; row++ {
		sb.WriteString(MoveTo(row+1, 1))
		var fg, bg Color
		first := true
		for x := 0; x < fb.Width; x++ {
			top := fb.GetPixel(x, row*2)
			bot := fb.GetPixel(x, row*2+1)
			if first || top != fg {
				writeSGR(sb, "38", top)
				fg = top
			}
			if first || bot != bg {
				writeSGR(sb, "48", bot)
				bg = bot
			}
			first = false
			sb.WriteString(HalfBlock)
		}
		sb.WriteString(reset)
	}
}

func writeSGR(sb *strings.Builder, layer string, c Color) {
	sb.WriteString(csi)
	sb.WriteString(layer)
	sb.WriteString(";2;")
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
}
