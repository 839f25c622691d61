package nes

import "github.com/golang/glog"

// CPU memory map
// 0x0000 - 0x07FF	work RAM
// 0x0800 - 0x1FFF	work RAM mirror
// 0x2000 - 0x2007	PPU registers
// 0x2008 - 0x3FFF	PPU register mirror (every 8 bytes)
// 0x4000 - 0x4013	APU registers (stub)
// 0x4014		OAM DMA
// 0x4015		APU status (stub)
// 0x4016		joypad 1
// 0x4017		joypad 2 (stub)
// 0x4018 - 0x401F	unused I/O
// 0x4020 - 0x7FFF	unmapped on this core
// 0x8000 - 0xFFFF	PRG ROM, mirrored every 0x4000 bytes for 16 KiB images
const (
	wramStart  = 0x0000
	wramEnd    = 0x1FFF
	ppuStart   = 0x2000
	ppuEnd     = 0x3FFF
	apuStart   = 0x4000
	apuEnd     = 0x4013
	oamDMAAddr = 0x4014
	apuStatus  = 0x4015
	joypad1    = 0x4016
	joypad2    = 0x4017
	ioEnd      = 0x401F
	prgStart   = 0x8000
)

// Bus wires the CPU's address space together: work RAM, the PPU register
// window (and its mirror), a stubbed APU, the joypad ports, OAM DMA, and
// cartridge PRG ROM. It also owns the frame-ready callback: once per
// completed PPU frame, tick invokes it with the PPU (for its framebuffer)
// and the primary joypad (so the host can push new button state back in).
type Bus struct {
	wram      *ram
	ppu       *PPU
	cartridge *Cartridge
	joypad1   *Joypad

	cycles int

	onFrame func(*PPU, *Joypad)
}

func newBus(cartridge *Cartridge, ppu *PPU, joypad1 *Joypad, onFrame func(*PPU, *Joypad)) *Bus {
	return &Bus{
		wram:      newRAM(),
		ppu:       ppu,
		cartridge: cartridge,
		joypad1:   joypad1,
		onFrame:   onFrame,
	}
}

// tick advances PPU time by 3 PPU-cycles per CPU cycle and fires the frame
// callback synchronously when a frame completes.
func (b *Bus) tick(cpuCycles int) {
	b.cycles += cpuCycles
	newFrame := b.ppu.tick(cpuCycles * 3)
	if newFrame && b.onFrame != nil {
		b.onFrame(b.ppu, b.joypad1)
	}
}

func (b *Bus) pollNMI() bool {
	return b.ppu.pollNMI()
}

func (b *Bus) readPPURegister(address uint16) byte {
	switch address {
	case 0x2002:
		return b.ppu.readStatus()
	case 0x2004:
		return b.ppu.readOAMData()
	case 0x2007:
		return b.ppu.readData()
	case 0x2000, 0x2001, 0x2003, 0x2005, 0x2006:
		glog.Fatalf("read of write-only PPU register: address=0x%04x\n", address)
		return 0
	default:
		glog.Fatalf("unknown PPU register read: address=0x%04x\n", address)
		return 0
	}
}

func (b *Bus) writeToPPURegister(address uint16, data byte) {
	switch address {
	case 0x2000:
		b.ppu.writeToCtrl(data)
	case 0x2001:
		b.ppu.writeToMask(data)
	case 0x2003:
		b.ppu.writeToOAMAddr(data)
	case 0x2004:
		b.ppu.writeToOAMData(data)
	case 0x2005:
		b.ppu.writeToScroll(data)
	case 0x2006:
		b.ppu.writeToAddr(data)
	case 0x2007:
		b.ppu.writeToData(data)
	case 0x2002:
		glog.Fatalf("write to read-only PPU register: address=0x%04x, data=0x%02x\n", address, data)
	default:
		glog.Fatalf("unknown PPU register write: address=0x%04x, data=0x%02x\n", address, data)
	}
}

// read reads a byte from CPU address space.
func (b *Bus) read(address uint16) byte {
	switch {
	case address <= wramEnd:
		return b.wram.read(address % 0x0800)
	case address <= ppuEnd:
		return b.readPPURegister(0x2000 + address%8)
	case address == joypad1:
		return b.joypad1.read()
	case address == joypad2:
		return 0 // second controller not emulated
	case address == oamDMAAddr:
		glog.Fatalf("read of write-only OAM DMA register: address=0x%04x\n", address)
		return 0
	case address >= apuStart && address <= apuStatus:
		return 0 // APU read-back not emulated
	case address <= ioEnd:
		glog.Infof("unimplemented CPU bus read: address=0x%04x\n", address)
		return 0
	case address >= prgStart:
		return b.cartridge.readPRG(address)
	default:
		glog.Infof("unmapped CPU bus read: address=0x%04x\n", address)
		return 0
	}
}

// read16 reads a little-endian word.
func (b *Bus) read16(address uint16) uint16 {
	lo := uint16(b.read(address))
	hi := uint16(b.read(address + 1))
	return hi<<8 | lo
}

// write writes a byte to CPU address space.
func (b *Bus) write(address uint16, data byte) {
	switch {
	case address <= wramEnd:
		b.wram.write(address%0x0800, data)
	case address <= ppuEnd:
		b.writeToPPURegister(0x2000+address%8, data)
	case address == oamDMAAddr:
		b.writeOAMDMA(data)
	case address == joypad1:
		b.joypad1.write(data)
	case address == joypad2:
		// second controller not emulated
	case address >= apuStart && address <= apuStatus:
		// APU register writes are accepted and ignored
	case address <= ioEnd:
		glog.Infof("unimplemented CPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	case address >= prgStart:
		glog.Fatalf("write to PRG ROM: address=0x%04x, data=0x%02x\n", address, data)
	default:
		glog.Infof("unmapped CPU bus write: address=0x%04x, data=0x%02x\n", address, data)
	}
}

// writeOAMDMA implements the $4014 OAM DMA transfer: 256 bytes starting at
// data<<8 are copied from CPU address space into PPU OAM.
func (b *Bus) writeOAMDMA(data byte) {
	hi := uint16(data) << 8
	var buf [256]byte
	for i := 0; i < 256; i++ {
		buf[i] = b.read(hi + uint16(i))
	}
	b.ppu.writeToOAMDMA(buf)
}
