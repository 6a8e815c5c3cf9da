package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillTrailsRGBA paints only marked cells and leaves unmarked ones
// transparent, so the trail layer can be toggled over a background.
func fillTrailsRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	fillPaletteRGBA(buf, cells, palette)
	for i, c := range cells {
		if c == 0 {
			base := i * 4
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
		}
	}
}
