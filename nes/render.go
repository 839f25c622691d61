package nes

// Framebuffer holds one composed 256x240 frame as RGB triples, row-major.
type Framebuffer [240][256][3]byte

func (f *Framebuffer) setPixel(x, y int, rgb [3]byte) {
	if x < 0 || x >= 256 || y < 0 || y >= 240 {
		return
	}
	f[y][x] = rgb
}

// bgPalette returns the four palette-table entries (universal background
// color plus the tile's own three colors) selected by the attribute table
// byte for the given tile coordinates.
func bgPalette(p *PPU, attrTable []byte, tileCol, tileRow int) [4]byte {
	attrIdx := (tileRow/4)*8 + tileCol/4
	attrByte := attrTable[attrIdx]

	var paletteIdx byte
	switch {
	case tileCol%4/2 == 0 && tileRow%4/2 == 0:
		paletteIdx = attrByte & 0b11
	case tileCol%4/2 == 1 && tileRow%4/2 == 0:
		paletteIdx = (attrByte >> 2) & 0b11
	case tileCol%4/2 == 0 && tileRow%4/2 == 1:
		paletteIdx = (attrByte >> 4) & 0b11
	default:
		paletteIdx = (attrByte >> 6) & 0b11
	}

	start := 1 + int(paletteIdx)*4
	return [4]byte{
		p.paletteTable[0],
		p.paletteTable[start],
		p.paletteTable[start+1],
		p.paletteTable[start+2],
	}
}

func spritePalette(p *PPU, paletteIdx byte) [4]byte {
	start := 0x11 + int(paletteIdx)*4
	return [4]byte{
		0,
		p.paletteTable[start],
		p.paletteTable[start+1],
		p.paletteTable[start+2],
	}
}

type rect struct {
	x1, y1, x2, y2 int
}

// renderNameTable draws the background tiles of one logical nametable into
// frame, clipped to viewPort and shifted by (shiftX, shiftY) — used to
// compose the scroll-split second nametable pass.
func renderNameTable(p *PPU, frame *Framebuffer, nameTable []byte, viewPort rect, shiftX, shiftY int) {
	bank := p.ctrl.bgPatternAddr()
	attrTable := nameTable[0x03C0:0x0400]

	for i := 0; i < 0x03C0; i++ {
		tileCol := i % 32
		tileRow := i / 32
		tileIdx := uint16(nameTable[i])
		tileStart := bank + tileIdx*16
		tile := p.chrROM[tileStart : tileStart+16]
		palette := bgPalette(p, attrTable, tileCol, tileRow)

		for y := 0; y < 8; y++ {
			upper := tile[y]
			lower := tile[y+8]
			for x := 7; x >= 0; x-- {
				colorIdx := (1&lower)<<1 | (1 & upper)
				upper >>= 1
				lower >>= 1

				var rgb [3]byte
				switch colorIdx {
				case 0:
					rgb = systemPalette[p.paletteTable[0]]
				case 1:
					rgb = systemPalette[palette[1]]
				case 2:
					rgb = systemPalette[palette[2]]
				default:
					rgb = systemPalette[palette[3]]
				}

				pixelX := tileCol*8 + x
				pixelY := tileRow*8 + y
				if pixelX >= viewPort.x1 && pixelX < viewPort.x2 && pixelY >= viewPort.y1 && pixelY < viewPort.y2 {
					frame.setPixel(shiftX+pixelX, shiftY+pixelY, rgb)
				}
			}
		}
	}
}

// render composes the full background (with scroll split) and sprites
// (back-to-front, sprite 0 last) into frame. Called once per completed
// frame from PPU.tick.
func render(p *PPU, frame *Framebuffer) {
	scrollX := int(p.scroll.x)
	scrollY := int(p.scroll.y)

	var mainStart, secondStart int
	switch p.mirroring {
	case MirrorVertical:
		switch p.ctrl.nametableAddr() {
		case 0x2000, 0x2800:
			mainStart, secondStart = 0, 0x400
		default:
			mainStart, secondStart = 0x400, 0
		}
	default: // horizontal and four-screen fall back to horizontal's layout
		switch p.ctrl.nametableAddr() {
		case 0x2000, 0x2400:
			mainStart, secondStart = 0, 0x400
		default:
			mainStart, secondStart = 0x400, 0
		}
	}
	mainTable := p.vram.data[mainStart : mainStart+0x400]
	secondTable := p.vram.data[secondStart : secondStart+0x400]

	renderNameTable(p, frame, mainTable, rect{scrollX, scrollY, 256, 240}, -scrollX, -scrollY)
	switch {
	case scrollX > 0:
		renderNameTable(p, frame, secondTable, rect{0, 0, scrollX, 240}, 256-scrollX, 0)
	case scrollY > 0:
		renderNameTable(p, frame, secondTable, rect{0, 0, 256, scrollY}, 0, 240-scrollY)
	}

	for i := len(p.oamData) - 4; i >= 0; i -= 4 {
		tileIdx := uint16(p.oamData[i+1])
		tileX := int(p.oamData[i+3])
		tileY := int(p.oamData[i])

		flipV := p.oamData[i+2]>>7&1 == 1
		flipH := p.oamData[i+2]>>6&1 == 1
		paletteIdx := p.oamData[i+2] & 0b11
		palette := spritePalette(p, paletteIdx)
		bank := p.ctrl.spritePatternAddr()

		tileStart := bank + tileIdx*16
		tile := p.chrROM[tileStart : tileStart+16]

		for y := 0; y < 8; y++ {
			upper := tile[y]
			lower := tile[y+8]
			for x := 7; x >= 0; x-- {
				value := (lower&1)<<1 | (upper & 1)
				upper >>= 1
				lower >>= 1
				if value == 0 {
					continue // color index 0 is transparent
				}
				rgb := systemPalette[palette[value]]
				switch {
				case !flipH && !flipV:
					frame.setPixel(tileX+x, tileY+y, rgb)
				case flipH && !flipV:
					frame.setPixel(tileX+7-x, tileY+y, rgb)
				case !flipH && flipV:
					frame.setPixel(tileX+x, tileY+7-y, rgb)
				default:
					frame.setPixel(tileX+7-x, tileY+7-y, rgb)
				}
			}
		}
	}
}
