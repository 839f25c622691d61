package nes

import "testing"

func newTestBus(prgROM []byte) *Bus {
	cartridge := &Cartridge{
		prgROM:    prgROM,
		chrROM:    make([]byte, 0x2000),
		mirroring: MirrorHorizontal,
	}
	ppu := newPPU(cartridge.chrROM, cartridge.mirroring)
	return newBus(cartridge, ppu, NewJoypad(), nil)
}

func TestBusWRAMMirroring(t *testing.T) {
	b := newTestBus(make([]byte, prgROMPageSize))
	b.write(0x0000, 0x42)
	if got := b.read(0x0800); got != 0x42 {
		t.Errorf("read(0x0800) = 0x%02x, want 0x42 (WRAM should mirror every 0x800)", got)
	}
	if got := b.read(0x1800); got != 0x42 {
		t.Errorf("read(0x1800) = 0x%02x, want 0x42", got)
	}
}

func TestBusPRGROM16KMirror(t *testing.T) {
	prg := make([]byte, prgROMPageSize)
	prg[0] = 0x55
	b := newTestBus(prg)
	if got := b.read(0x8000); got != 0x55 {
		t.Errorf("read(0x8000) = 0x%02x, want 0x55", got)
	}
	if got := b.read(0xC000); got != 0x55 {
		t.Errorf("read(0xC000) = 0x%02x, want 0x55 (16K PRG should mirror)", got)
	}
}

func TestBusOAMDMA(t *testing.T) {
	b := newTestBus(make([]byte, prgROMPageSize))
	b.write(0x0010, 0x66)
	b.write(0x0011, 0x77)
	b.write(oamDMAAddr, 0x00)
	if got := b.ppu.oamData[0x10]; got != 0x66 {
		t.Errorf("ppu.oamData[0x10] = 0x%02x, want 0x66", got)
	}
	if got := b.ppu.oamData[0x11]; got != 0x77 {
		t.Errorf("ppu.oamData[0x11] = 0x%02x, want 0x77", got)
	}
}

func TestBusJoypadRoundTrip(t *testing.T) {
	b := newTestBus(make([]byte, prgROMPageSize))
	b.joypad1.Press(ButtonA)
	b.write(joypad1, 1)
	b.write(joypad1, 0)
	if got := b.read(joypad1); got != 1 {
		t.Errorf("read(joypad1) = %d, want 1", got)
	}
}

func TestBusFrameCallback(t *testing.T) {
	fired := false
	cartridge := &Cartridge{
		prgROM:    make([]byte, prgROMPageSize),
		chrROM:    make([]byte, 0x2000),
		mirroring: MirrorHorizontal,
	}
	ppu := newPPU(cartridge.chrROM, cartridge.mirroring)
	b := newBus(cartridge, ppu, NewJoypad(), func(*PPU, *Joypad) { fired = true })

	// 341 PPU cycles/scanline * 262 scanlines, at 3 PPU cycles per CPU cycle.
	cpuCyclesPerFrame := (341*262)/3 + 1
	for i := 0; i < cpuCyclesPerFrame; i++ {
		b.tick(1)
	}
	if !fired {
		t.Error("frame callback never fired after a full frame's worth of ticks")
	}
}
