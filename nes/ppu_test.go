package nes

import "testing"

func newTestPPU(mirroring Mirroring) *PPU {
	return newPPU(make([]byte, 0x2000), mirroring)
}

func TestPPUVRAMWrites(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.writeToAddr(0x23)
	p.writeToAddr(0x05)
	p.writeToData(0x66)
	if got := p.vram.read(0x0305); got != 0x66 {
		t.Errorf("vram[0x0305] = 0x%02x, want 0x66", got)
	}
}

func TestPPUVRAMReadsAreBuffered(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.ctrl.load(0)
	p.vram.write(0x0305, 0x66)
	p.writeToAddr(0x23)
	p.writeToAddr(0x05)
	p.readData() // first read returns stale buffer, primes it with 0x66
	if got := p.readData(); got != 0x66 {
		t.Errorf("second readData() = 0x%02x, want 0x66", got)
	}
}

func TestPPUVRAMReadsStep32(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.ctrl.load(0b100) // VRAM_ADD_INC
	p.writeToAddr(0x21)
	p.writeToAddr(0xFF)
	p.readData()
	if got := p.addr.get(); got != 0x221F {
		t.Errorf("addr after step-32 read = 0x%04x, want 0x221F", got)
	}
}

func TestPPUVRAMReadsCrossPage(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.ctrl.load(0)
	p.vram.write(0x01ff, 0x66)
	p.vram.write(0x0200, 0x77)
	p.writeToAddr(0x21)
	p.writeToAddr(0xff)
	p.readData()
	if got := p.readData(); got != 0x66 {
		t.Errorf("readData() = 0x%02x, want 0x66", got)
	}
	if got := p.readData(); got != 0x77 {
		t.Errorf("readData() = 0x%02x, want 0x77", got)
	}
}

func TestPPUHorizontalMirroring(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.writeToAddr(0x24)
	p.writeToAddr(0x05)
	p.writeToData(0x66) // nametable 1 -> physical 0

	p.writeToAddr(0x28)
	p.writeToAddr(0x05)
	p.writeToData(0x77) // nametable 2 -> physical 1

	p.writeToAddr(0x20)
	p.writeToAddr(0x05)
	p.readData()
	if got := p.readData(); got != 0x66 {
		t.Errorf("nametable 0 readback = 0x%02x, want 0x66", got)
	}

	p.writeToAddr(0x2C)
	p.writeToAddr(0x05)
	p.readData()
	if got := p.readData(); got != 0x77 {
		t.Errorf("nametable 3 readback = 0x%02x, want 0x77", got)
	}
}

func TestPPUVerticalMirroring(t *testing.T) {
	p := newTestPPU(MirrorVertical)
	p.writeToAddr(0x20)
	p.writeToAddr(0x05)
	p.writeToData(0x66) // nametable 0 -> physical 0

	p.writeToAddr(0x2C)
	p.writeToAddr(0x05)
	p.writeToData(0x77) // nametable 3 -> physical 1

	p.writeToAddr(0x28)
	p.writeToAddr(0x05)
	p.readData()
	if got := p.readData(); got != 0x66 {
		t.Errorf("nametable 2 readback = 0x%02x, want 0x66", got)
	}

	p.writeToAddr(0x24)
	p.writeToAddr(0x05)
	p.readData()
	if got := p.readData(); got != 0x77 {
		t.Errorf("nametable 1 readback = 0x%02x, want 0x77", got)
	}
}

func TestPPUReadStatusResetsLatch(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.vram.write(0x0305, 0x66)

	p.writeToAddr(0x21) // first half of an address write
	p.readStatus()      // must reset the latch back to expecting a high byte
	p.writeToAddr(0x23)
	p.writeToAddr(0x05)
	p.readData() // primes the read buffer
	if got := p.readData(); got != 0x66 {
		t.Errorf("readData() after status-reset latch = 0x%02x, want 0x66", got)
	}
}

func TestPPUReadStatusResetsVBlank(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.status.setVerticalBlank(true)
	p.readStatus()
	if p.status.inVerticalBlank() {
		t.Error("VBLANK still set after readStatus")
	}
}

func TestPPUOAMReadWrite(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.writeToOAMAddr(0x10)
	p.writeToOAMData(0x66)
	p.writeToOAMData(0x77)

	p.writeToOAMAddr(0x10)
	if got := p.readOAMData(); got != 0x66 {
		t.Errorf("readOAMData() = 0x%02x, want 0x66", got)
	}
}

func TestPPUOAMDMA(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	var data [256]byte
	data[0] = 0x66
	data[255] = 0x77
	p.writeToOAMAddr(0x10)
	p.writeToOAMDMA(data)

	if got := p.oamData[0x10]; got != 0x66 {
		t.Errorf("oamData[0x10] = 0x%02x, want 0x66", got)
	}
	if got := p.oamData[0x0F]; got != 0x77 {
		t.Errorf("oamData[0x0F] = 0x%02x, want 0x77 (dma should wrap)", got)
	}
}

func TestPaletteMirrorIndexFixed(t *testing.T) {
	cases := map[uint16]uint16{
		0x3F10: 0x00,
		0x3F14: 0x04,
		0x3F18: 0x08,
		0x3F1C: 0x0C,
		0x3F00: 0x00,
		0x3F05: 0x05,
	}
	for addr, want := range cases {
		if got := paletteIndex(addr); got != want {
			t.Errorf("paletteIndex(0x%04X) = 0x%02X, want 0x%02X", addr, got, want)
		}
	}
}

func TestPPUWriteToCtrlEdgeTriggersNMI(t *testing.T) {
	p := newTestPPU(MirrorHorizontal)
	p.status.setVerticalBlank(true)
	p.writeToCtrl(0) // NMI disabled
	if p.pollNMI() {
		t.Fatal("NMI should not fire while generate-NMI is disabled")
	}
	p.writeToCtrl(ctrlGenerateNMI)
	if !p.pollNMI() {
		t.Error("enabling NMI generation during VBLANK should fire NMI immediately")
	}
}
