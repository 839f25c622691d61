package nes

// CPU emulates the NES CPU, a custom 6502 variant made by Ricoh.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/undocumented_opcodes.txt

const (
	stackBase  uint16 = 0x0100
	stackReset byte   = 0xFD
)

// CPU status register bits.
const (
	flagCarry            byte = 1 << 0
	flagZero             byte = 1 << 1
	flagInterruptDisable byte = 1 << 2
	flagDecimal          byte = 1 << 3
	flagBreak            byte = 1 << 4
	flagBreak2           byte = 1 << 5
	flagOverflow         byte = 1 << 6
	flagNegative         byte = 1 << 7
)

type addressingMode int

const (
	modeImplied addressingMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeNone
)

// CPU holds the 6502 register file and drives the fetch-decode-execute
// loop against a Bus.
type CPU struct {
	A  byte
	X  byte
	Y  byte
	P  flagSet8
	S  byte
	PC uint16

	bus *Bus

	instructions [256]instruction
}

func newCPU(bus *Bus) *CPU {
	c := &CPU{bus: bus}
	c.instructions = buildOpcodeTable()
	return c
}

// Reset sets the register file to its power-up state and loads PC from the
// reset vector at $FFFC.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P.load(0b0010_0100)
	c.S = stackReset
	c.PC = c.bus.read16(0xFFFC)
}

func (c *CPU) pushU8(v byte) {
	c.bus.write(stackBase+uint16(c.S), v)
	c.S--
}

func (c *CPU) popU8() byte {
	c.S++
	return c.bus.read(stackBase + uint16(c.S))
}

func (c *CPU) pushU16(v uint16) {
	c.pushU8(byte(v >> 8))
	c.pushU8(byte(v))
}

func (c *CPU) popU16() uint16 {
	lo := uint16(c.popU8())
	hi := uint16(c.popU8())
	return hi<<8 | lo
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// getOperandAddress resolves the effective address for mode, reading any
// operand bytes that follow the opcode at PC+1. It reports whether
// resolving the address crossed a page boundary (relevant for the +1 cycle
// penalty on some addressing modes).
func (c *CPU) getOperandAddress(mode addressingMode) (uint16, bool) {
	switch mode {
	case modeImmediate:
		return c.PC + 1, false
	case modeZeroPage:
		return uint16(c.bus.read(c.PC + 1)), false
	case modeZeroPageX:
		return uint16(c.bus.read(c.PC+1) + c.X), false
	case modeZeroPageY:
		return uint16(c.bus.read(c.PC+1) + c.Y), false
	case modeAbsolute:
		return c.bus.read16(c.PC + 1), false
	case modeAbsoluteX:
		base := c.bus.read16(c.PC + 1)
		addr := base + uint16(c.X)
		return addr, pageCrossed(base, addr)
	case modeAbsoluteY:
		base := c.bus.read16(c.PC + 1)
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	case modeIndirectX:
		ptr := c.bus.read(c.PC+1) + c.X
		lo := uint16(c.bus.read(uint16(ptr)))
		hi := uint16(c.bus.read(uint16(ptr + 1)))
		return hi<<8 | lo, false
	case modeIndirectY:
		ptr := c.bus.read(c.PC + 1)
		lo := uint16(c.bus.read(uint16(ptr)))
		hi := uint16(c.bus.read(uint16(ptr + 1)))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return addr, pageCrossed(base, addr)
	default:
		return 0, false
	}
}

func (c *CPU) updateZeroAndNegative(v byte) {
	c.P.set(flagZero, v == 0)
	c.P.set(flagNegative, v&0x80 != 0)
}

// addToA implements ADC's addition, shared verbatim by SBC (which passes
// the one's complement of its operand, -v-1, to this).
func (c *CPU) addToA(value byte) {
	sum := uint16(c.A) + uint16(value)
	if c.P.contains(flagCarry) {
		sum++
	}
	c.P.set(flagCarry, sum > 0xFF)
	result := byte(sum)
	if (value^result)&(result^c.A)&0x80 != 0 {
		c.P.insert(flagOverflow)
	} else {
		c.P.remove(flagOverflow)
	}
	c.A = result
	c.updateZeroAndNegative(c.A)
}

func (c *CPU) subFromA(value byte) {
	c.addToA(byte(-int8(value) - 1))
}

// branch implements the shared timing and offset logic for all conditional
// branches: +1 cycle if taken, +1 more if the branch crosses a page.
func (c *CPU) branch(condition bool) {
	if !condition {
		return
	}
	c.bus.tick(1)
	offset := int8(c.bus.read(c.PC + 1))
	jumpAddr := c.PC + 2 + uint16(offset)
	if pageCrossed(c.PC+2, jumpAddr) {
		c.bus.tick(1)
	}
	c.PC = jumpAddr
}

// interruptNMI pushes PC and status and jumps to the NMI vector at $FFFA.
func (c *CPU) interruptNMI() {
	c.pushU16(c.PC)
	flags := c.P
	flags.set(flagBreak, false)
	flags.set(flagBreak2, true)
	c.pushU8(flags.bits())
	c.P.insert(flagInterruptDisable)
	c.bus.tick(2)
	c.PC = c.bus.read16(0xFFFA)
}

// Step runs exactly one instruction (polling for a pending NMI first) and
// returns the number of CPU cycles it consumed. BRK halts the core: the
// BREAK flag is set but never vectored, and the caller is expected to stop
// calling Step once it observes BRK (see Console.Halted).
func (c *CPU) Step() int {
	startCycles := c.bus.cycles
	if c.bus.pollNMI() {
		c.interruptNMI()
	}

	originalPC := c.PC
	opcode := c.bus.read(c.PC)
	inst := c.instructions[opcode]

	inst.handler(c, inst.mode)

	if c.PC == originalPC {
		c.PC += uint16(inst.bytes)
	}
	c.bus.tick(inst.cycles)
	return c.bus.cycles - startCycles
}

// Halted reports whether the last-executed instruction was BRK.
func (c *CPU) Halted() bool {
	return c.P.contains(flagBreak)
}
