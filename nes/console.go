package nes

// Console wires a parsed Cartridge together with a CPU, PPU, and the
// primary Joypad behind a shared Bus. The caller drives emulation by
// calling Step in a loop; the supplied onFrame callback fires synchronously
// from inside Step whenever the PPU completes a frame.
type Console struct {
	cpu     *CPU
	ppu     *PPU
	bus     *Bus
	joypad1 *Joypad
}

// NewConsole parses romBytes as an iNES v1 image and wires up a ready-to-run
// Console. onFrame may be nil if the caller doesn't care about frame
// completion (e.g. headless CPU-only tests).
func NewConsole(romBytes []byte, onFrame func(*PPU, *Joypad)) (*Console, error) {
	cartridge, err := NewCartridge(romBytes)
	if err != nil {
		return nil, err
	}

	ppu := newPPU(cartridge.chrROM, cartridge.mirroring)
	joypad1 := NewJoypad()
	bus := newBus(cartridge, ppu, joypad1, onFrame)
	cpu := newCPU(bus)

	console := &Console{
		cpu:     cpu,
		ppu:     ppu,
		bus:     bus,
		joypad1: joypad1,
	}
	console.Reset()
	return console, nil
}

// Reset puts the CPU through its power-up sequence, loading PC from the
// reset vector.
func (c *Console) Reset() {
	c.cpu.Reset()
}

// Step runs one CPU instruction (ticking the PPU/bus alongside it) and
// returns the number of CPU cycles it took.
func (c *Console) Step() int {
	return c.cpu.Step()
}

// Halted reports whether the CPU has executed a BRK and is no longer
// making progress.
func (c *Console) Halted() bool {
	return c.cpu.Halted()
}

// Joypad1 returns the primary controller, for the host to push button
// state into between frames.
func (c *Console) Joypad1() *Joypad {
	return c.joypad1
}

// Frame returns the most recently composed framebuffer.
func (c *Console) Frame() *Framebuffer {
	return &c.ppu.frame
}
