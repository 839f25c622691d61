package nes

import "github.com/golang/glog"

// PPU emulates the NES picture processing unit at scanline/cycle
// granularity: it is driven by tick(ppuCycles) from the bus (which converts
// CPU cycles to PPU cycles at the fixed 1:3 ratio) and exposes the CPU-side
// register protocol ($2000-$2007, mirrored through $3FFF) plus OAM DMA.
//
// This is not a cycle-exact PPU: pixels are not produced incrementally
// during the scanline, they are composed in one pass at the end of each
// frame (see render.go). VBLANK/NMI timing is tracked per scanline, and
// sprite-0 hit is approximated from sprite 0's Y/X position, checked once at
// the end of each scanline; mid-scanline raster effects are not supported.
type PPU struct {
	chrROM      []byte
	mirroring   Mirroring
	vram        *ram
	paletteTable [32]byte
	oamData     [256]byte
	oamAddr     byte

	ctrl   ctrlRegister
	mask   maskRegister
	status statusRegister
	addr   addrRegister
	scroll scrollRegister

	internalDataBuffer byte

	scanline int
	cycles   int

	nmiInterrupt bool

	frame Framebuffer
}

func newPPU(chrROM []byte, mirroring Mirroring) *PPU {
	p := &PPU{
		chrROM:    chrROM,
		mirroring: mirroring,
		vram:      newRAM(),
		addr:      newAddrRegister(),
		scroll:    newScrollRegister(),
	}
	return p
}

// tick advances the PPU by cycle PPU-cycles (already converted from CPU
// cycles by the caller) and reports whether a frame was just completed.
func (p *PPU) tick(cycle int) bool {
	p.cycles += cycle

	if p.cycles >= 341 {
		if p.isSpriteZeroHit(p.cycles) {
			p.status.setSpriteZeroHit(true)
		}

		p.cycles -= 341
		p.scanline++

		if p.scanline == 241 {
			p.status.setVerticalBlank(true)
			p.status.setSpriteZeroHit(false)
			if p.ctrl.generateNMI() {
				p.nmiInterrupt = true
			}
		}

		if p.scanline >= 262 {
			p.scanline = 0
			p.nmiInterrupt = false
			p.status.setSpriteZeroHit(false)
			p.status.resetVerticalBlank()
			render(p, &p.frame)
			return true
		}
	}
	return false
}

// FrameBuffer returns the most recently composed frame.
func (p *PPU) FrameBuffer() *Framebuffer {
	return &p.frame
}

func (p *PPU) isSpriteZeroHit(cycle int) bool {
	y := int(p.oamData[0])
	x := int(p.oamData[3])
	return y == p.scanline && x <= cycle && p.mask.showSprites()
}

// pollNMI consumes and clears a pending NMI request, reporting whether one
// was pending.
func (p *PPU) pollNMI() bool {
	if p.nmiInterrupt {
		p.nmiInterrupt = false
		return true
	}
	return false
}

// mirrorVRAMAddr folds a $2000-$3EFF PPU address down to a 0-0x7FF index
// into the two physical nametables, according to the cartridge's mirroring.
func (p *PPU) mirrorVRAMAddr(addr uint16) uint16 {
	mirrored := addr & 0x2FFF
	vramIdx := mirrored - 0x2000
	nameTable := vramIdx / 0x0400

	switch {
	case p.mirroring == MirrorVertical && (nameTable == 2 || nameTable == 3):
		return vramIdx - 0x0800
	case p.mirroring == MirrorHorizontal && nameTable == 3:
		return vramIdx - 0x0800
	case p.mirroring == MirrorHorizontal && (nameTable == 1 || nameTable == 2):
		return vramIdx - 0x0400
	default:
		return vramIdx
	}
}

// paletteIndex folds a $3F10/$3F14/$3F18/$3F1C sprite-palette mirror down
// to the matching background slot ($00/$04/$08/$0C); every other
// $3F00-$3FFF address maps to itself modulo 32.
func paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) & 0x1F
	if idx == 0x10 || idx == 0x14 || idx == 0x18 || idx == 0x1C {
		idx -= 0x10
	}
	return idx
}

// writeToCtrl handles a CPU write to $2000, including the edge-triggered
// NMI that fires if NMI generation is newly enabled while already in
// VBLANK.
func (p *PPU) writeToCtrl(data byte) {
	preNMI := p.ctrl.generateNMI()
	p.ctrl.load(data)
	if !preNMI && p.ctrl.generateNMI() && p.status.inVerticalBlank() {
		p.nmiInterrupt = true
	}
}

func (p *PPU) writeToMask(data byte) {
	p.mask.load(data)
}

// readStatus handles a CPU read of $2002: the returned bits reflect the
// state before VBLANK and the address/scroll latches are reset.
func (p *PPU) readStatus() byte {
	result := p.status.bits()
	p.status.resetVerticalBlank()
	p.addr.resetLatch()
	p.scroll.resetLatch()
	return result
}

func (p *PPU) writeToOAMAddr(data byte) {
	p.oamAddr = data
}

func (p *PPU) writeToOAMData(data byte) {
	p.oamData[p.oamAddr] = data
	p.oamAddr++
}

func (p *PPU) readOAMData() byte {
	return p.oamData[p.oamAddr]
}

// writeToOAMDMA copies a full 256-byte page into OAM starting at the
// current OAM address, wrapping through the buffer.
func (p *PPU) writeToOAMDMA(data [256]byte) {
	for _, b := range data {
		p.oamData[p.oamAddr] = b
		p.oamAddr++
	}
}

func (p *PPU) writeToScroll(data byte) {
	p.scroll.write(data)
}

func (p *PPU) writeToAddr(data byte) {
	p.addr.update(data)
}

// readData handles a CPU read of $2007. CHR ROM and nametable reads are
// buffered one access behind; palette reads are not. The VRAM address
// increments immediately, before the value at the old address is used.
func (p *PPU) readData() byte {
	addr := p.addr.get()
	p.addr.increment(p.ctrl.vramAddrIncrement())

	switch {
	case addr <= 0x1FFF:
		result := p.internalDataBuffer
		p.internalDataBuffer = p.chrROM[addr]
		return result
	case addr <= 0x2FFF:
		result := p.internalDataBuffer
		p.internalDataBuffer = p.vram.read(p.mirrorVRAMAddr(addr))
		return result
	case addr <= 0x3EFF:
		glog.Fatalf("unexpected PPU data read at $%04X", addr)
		return 0
	case addr <= 0x3FFF:
		return p.paletteTable[paletteIndex(addr)]
	default:
		glog.Fatalf("unexpected PPU data read at $%04X", addr)
		return 0
	}
}

// writeToData handles a CPU write to $2007, incrementing the VRAM address
// after the write (unlike readData, which increments before).
func (p *PPU) writeToData(data byte) {
	addr := p.addr.get()

	switch {
	case addr <= 0x1FFF:
		glog.Infof("ignoring write to CHR ROM at $%04X", addr)
	case addr <= 0x2FFF:
		p.vram.write(p.mirrorVRAMAddr(addr), data)
	case addr <= 0x3EFF:
		glog.Fatalf("unexpected PPU data write at $%04X", addr)
	case addr <= 0x3FFF:
		p.paletteTable[paletteIndex(addr)] = data
	default:
		glog.Fatalf("unexpected PPU data write at $%04X", addr)
	}

	p.addr.increment(p.ctrl.vramAddrIncrement())
}
