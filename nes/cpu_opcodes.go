package nes

import "github.com/golang/glog"

type instruction struct {
	mnemonic string
	mode     addressingMode
	bytes    byte
	cycles   int
	handler  func(*CPU, addressingMode)
}

// readOperand resolves mode to an address, applies the well-known +1 cycle
// page-crossing penalty (ADC/AND/CMP/EOR/LDA/LDX/LDY/ORA/SBC and the
// unofficial read-only opcodes such as LAX, LAS and the operand-reading NOPs
// share this rule; read-modify-write opcodes do not use it), and reads the
// byte there.
func readOperand(c *CPU, mode addressingMode) (uint16, byte) {
	addr, crossed := c.getOperandAddress(mode)
	if crossed {
		c.bus.tick(1)
	}
	return addr, c.bus.read(addr)
}

func opADC(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.addToA(v)
}

func opSBC(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.subFromA(v)
}

func opAND(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A &= v
	c.updateZeroAndNegative(c.A)
}

func opORA(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A |= v
	c.updateZeroAndNegative(c.A)
}

func opEOR(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A ^= v
	c.updateZeroAndNegative(c.A)
}

func shiftASL(c *CPU, v byte) byte {
	c.P.set(flagCarry, v&0x80 != 0)
	result := v << 1
	c.updateZeroAndNegative(result)
	return result
}

func shiftLSR(c *CPU, v byte) byte {
	c.P.set(flagCarry, v&0x01 != 0)
	result := v >> 1
	c.updateZeroAndNegative(result)
	return result
}

func shiftROL(c *CPU, v byte) byte {
	oldCarry := c.P.contains(flagCarry)
	c.P.set(flagCarry, v&0x80 != 0)
	result := v << 1
	if oldCarry {
		result |= 1
	}
	c.updateZeroAndNegative(result)
	return result
}

func shiftROR(c *CPU, v byte) byte {
	oldCarry := c.P.contains(flagCarry)
	c.P.set(flagCarry, v&0x01 != 0)
	result := v >> 1
	if oldCarry {
		result |= 0x80
	}
	c.updateZeroAndNegative(result)
	return result
}

func opASL(c *CPU, mode addressingMode) {
	if mode == modeAccumulator {
		c.A = shiftASL(c, c.A)
		return
	}
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, shiftASL(c, c.bus.read(addr)))
}

func opLSR(c *CPU, mode addressingMode) {
	if mode == modeAccumulator {
		c.A = shiftLSR(c, c.A)
		return
	}
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, shiftLSR(c, c.bus.read(addr)))
}

func opROL(c *CPU, mode addressingMode) {
	if mode == modeAccumulator {
		c.A = shiftROL(c, c.A)
		return
	}
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, shiftROL(c, c.bus.read(addr)))
}

func opROR(c *CPU, mode addressingMode) {
	if mode == modeAccumulator {
		c.A = shiftROR(c, c.A)
		return
	}
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, shiftROR(c, c.bus.read(addr)))
}

func opBIT(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	result := c.A & v
	c.P.set(flagZero, result == 0)
	c.P.set(flagOverflow, v&0x40 != 0)
	c.P.set(flagNegative, v&0x80 != 0)
}

func compare(c *CPU, reg byte, mode addressingMode) {
	_, v := readOperand(c, mode)
	result := reg - v
	c.P.set(flagCarry, reg >= v)
	c.updateZeroAndNegative(result)
}

func opCMP(c *CPU, mode addressingMode) { compare(c, c.A, mode) }
func opCPX(c *CPU, mode addressingMode) { compare(c, c.X, mode) }
func opCPY(c *CPU, mode addressingMode) { compare(c, c.Y, mode) }

func opDEC(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := c.bus.read(addr) - 1
	c.bus.write(addr, result)
	c.updateZeroAndNegative(result)
}

func opINC(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := c.bus.read(addr) + 1
	c.bus.write(addr, result)
	c.updateZeroAndNegative(result)
}

func opDEX(c *CPU, _ addressingMode) { c.X--; c.updateZeroAndNegative(c.X) }
func opDEY(c *CPU, _ addressingMode) { c.Y--; c.updateZeroAndNegative(c.Y) }
func opINX(c *CPU, _ addressingMode) { c.X++; c.updateZeroAndNegative(c.X) }
func opINY(c *CPU, _ addressingMode) { c.Y++; c.updateZeroAndNegative(c.Y) }

func opLDA(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A = v
	c.updateZeroAndNegative(c.A)
}

func opLDX(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.X = v
	c.updateZeroAndNegative(c.X)
}

func opLDY(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.Y = v
	c.updateZeroAndNegative(c.Y)
}

func opSTA(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, c.A)
}

func opSTX(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, c.X)
}

func opSTY(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, c.Y)
}

func opTAX(c *CPU, _ addressingMode) { c.X = c.A; c.updateZeroAndNegative(c.X) }
func opTAY(c *CPU, _ addressingMode) { c.Y = c.A; c.updateZeroAndNegative(c.Y) }
func opTXA(c *CPU, _ addressingMode) { c.A = c.X; c.updateZeroAndNegative(c.A) }
func opTYA(c *CPU, _ addressingMode) { c.A = c.Y; c.updateZeroAndNegative(c.A) }
func opTSX(c *CPU, _ addressingMode) { c.X = c.S; c.updateZeroAndNegative(c.X) }
func opTXS(c *CPU, _ addressingMode) { c.S = c.X }

func opPHA(c *CPU, _ addressingMode) { c.pushU8(c.A) }
func opPLA(c *CPU, _ addressingMode) {
	c.A = c.popU8()
	c.updateZeroAndNegative(c.A)
}

func opPHP(c *CPU, _ addressingMode) {
	flags := c.P
	flags.insert(flagBreak)
	flags.insert(flagBreak2)
	c.pushU8(flags.bits())
}

func opPLP(c *CPU, _ addressingMode) {
	c.P.load(c.popU8())
	c.P.remove(flagBreak)
	c.P.insert(flagBreak2)
}

func opJMP(c *CPU, mode addressingMode) {
	if mode == modeAbsolute {
		c.PC = c.bus.read16(c.PC + 1)
		return
	}
	// indirect: reproduces the 6502 page-boundary-wrap hardware bug.
	ptr := c.bus.read16(c.PC + 1)
	var target uint16
	if ptr&0x00FF == 0x00FF {
		lo := uint16(c.bus.read(ptr))
		hi := uint16(c.bus.read(ptr & 0xFF00))
		target = hi<<8 | lo
	} else {
		target = c.bus.read16(ptr)
	}
	c.PC = target
}

func opJSR(c *CPU, _ addressingMode) {
	c.pushU16(c.PC + 2)
	c.PC = c.bus.read16(c.PC + 1)
}

func opRTS(c *CPU, _ addressingMode) {
	c.PC = c.popU16() + 1
}

func opRTI(c *CPU, _ addressingMode) {
	c.P.load(c.popU8())
	c.P.remove(flagBreak)
	c.P.insert(flagBreak2)
	c.PC = c.popU16()
}

func opBRK(c *CPU, _ addressingMode) {
	c.P.insert(flagBreak)
}

func opNOP(c *CPU, _ addressingMode) {}

// nopRead is used by the unofficial *NOP opcodes that do consume an operand
// address and pay the page-crossing penalty, but otherwise have no effect.
func nopRead(c *CPU, mode addressingMode) {
	readOperand(c, mode)
}

func opCLC(c *CPU, _ addressingMode) { c.P.remove(flagCarry) }
func opSEC(c *CPU, _ addressingMode) { c.P.insert(flagCarry) }
func opCLI(c *CPU, _ addressingMode) { c.P.remove(flagInterruptDisable) }
func opSEI(c *CPU, _ addressingMode) { c.P.insert(flagInterruptDisable) }
func opCLD(c *CPU, _ addressingMode) { c.P.remove(flagDecimal) }
func opSED(c *CPU, _ addressingMode) { c.P.insert(flagDecimal) }
func opCLV(c *CPU, _ addressingMode) { c.P.remove(flagOverflow) }

func opBPL(c *CPU, _ addressingMode) { c.branch(!c.P.contains(flagNegative)) }
func opBMI(c *CPU, _ addressingMode) { c.branch(c.P.contains(flagNegative)) }
func opBVC(c *CPU, _ addressingMode) { c.branch(!c.P.contains(flagOverflow)) }
func opBVS(c *CPU, _ addressingMode) { c.branch(c.P.contains(flagOverflow)) }
func opBCC(c *CPU, _ addressingMode) { c.branch(!c.P.contains(flagCarry)) }
func opBCS(c *CPU, _ addressingMode) { c.branch(c.P.contains(flagCarry)) }
func opBNE(c *CPU, _ addressingMode) { c.branch(!c.P.contains(flagZero)) }
func opBEQ(c *CPU, _ addressingMode) { c.branch(c.P.contains(flagZero)) }

// --- Unofficial opcodes ---
// Reference: https://www.nesdev.org/undocumented_opcodes.txt

func opANC(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A &= v
	c.updateZeroAndNegative(c.A)
	c.P.set(flagCarry, c.A&0x80 != 0)
}

func opSAX(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	c.bus.write(addr, c.A&c.X)
}

func opARR(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A &= v
	c.A >>= 1
	c.updateZeroAndNegative(c.A)
	c.P.set(flagCarry, c.A&0x40 != 0)
	bit5 := c.A&0x20 != 0
	bit6 := c.A&0x40 != 0
	c.P.set(flagOverflow, bit5 != bit6)
}

func opALR(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.P.set(flagCarry, c.A&0x01 != 0)
	c.A &= v
	c.A >>= 1
	c.updateZeroAndNegative(c.A)
}

func opLXA(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A = v
	c.X = v
	c.updateZeroAndNegative(c.A)
}

func opAHX(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	v := c.A & c.X & byte(addr>>8)
	c.bus.write(addr, v)
}

func opAXS(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	result := (c.A & c.X) - v
	c.X = result
	c.updateZeroAndNegative(c.X)
	c.P.set(flagCarry, c.X&0x80 != 0)
}

func opDCP(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := c.bus.read(addr) - 1
	c.bus.write(addr, result)
	c.P.set(flagCarry, c.A >= result)
	c.updateZeroAndNegative(c.A - result)
}

func opISB(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := c.bus.read(addr) + 1
	c.bus.write(addr, result)
	c.subFromA(result)
}

func opLAS(c *CPU, mode addressingMode) {
	_, v := readOperand(c, mode)
	c.A = c.S & v
	c.X = c.A
	c.S = c.A
	c.updateZeroAndNegative(c.A)
}

func opLAX(c *CPU, mode addressingMode) {
	opLDA(c, mode)
	c.X = c.A
	c.updateZeroAndNegative(c.X)
}

func opRLA(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := shiftROL(c, c.bus.read(addr))
	c.bus.write(addr, result)
	c.A &= result
	c.updateZeroAndNegative(c.A)
}

func opRRA(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := shiftROR(c, c.bus.read(addr))
	c.bus.write(addr, result)
	c.addToA(result)
}

func opSLO(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := shiftASL(c, c.bus.read(addr))
	c.bus.write(addr, result)
	c.A |= result
	c.updateZeroAndNegative(c.A)
}

func opSRE(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	result := shiftLSR(c, c.bus.read(addr))
	c.bus.write(addr, result)
	c.A ^= result
	c.updateZeroAndNegative(c.A)
}

func opSHX(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	v := c.X & (byte(addr>>8) + 1)
	c.bus.write(addr, v)
}

func opSHY(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	v := c.Y & (byte(addr>>8) + 1)
	c.bus.write(addr, v)
}

func opTAS(c *CPU, mode addressingMode) {
	addr, _ := c.getOperandAddress(mode)
	c.S = c.A & c.X
	result := c.S & (byte(addr>>8) + 1)
	c.bus.write(addr, result)
}

func opXAA(c *CPU, _ addressingMode) {
	glog.Fatalf("XAA (0x8B) is highly unstable on real hardware and is not emulated")
}

func buildOpcodeTable() [256]instruction {
	var t [256]instruction
	for i := range t {
		t[i] = instruction{mnemonic: "", mode: modeImplied, bytes: 1, cycles: 2, handler: opNOP}
	}

	set := func(op byte, mnemonic string, mode addressingMode, bytes byte, cycles int, h func(*CPU, addressingMode)) {
		t[op] = instruction{mnemonic, mode, bytes, cycles, h}
	}

	// Official opcodes.
	set(0x69, "ADC", modeImmediate, 2, 2, opADC)
	set(0x65, "ADC", modeZeroPage, 2, 3, opADC)
	set(0x75, "ADC", modeZeroPageX, 2, 4, opADC)
	set(0x6D, "ADC", modeAbsolute, 3, 4, opADC)
	set(0x7D, "ADC", modeAbsoluteX, 3, 4, opADC)
	set(0x79, "ADC", modeAbsoluteY, 3, 4, opADC)
	set(0x61, "ADC", modeIndirectX, 2, 6, opADC)
	set(0x71, "ADC", modeIndirectY, 2, 5, opADC)

	set(0x29, "AND", modeImmediate, 2, 2, opAND)
	set(0x25, "AND", modeZeroPage, 2, 3, opAND)
	set(0x35, "AND", modeZeroPageX, 2, 4, opAND)
	set(0x2D, "AND", modeAbsolute, 3, 4, opAND)
	set(0x3D, "AND", modeAbsoluteX, 3, 4, opAND)
	set(0x39, "AND", modeAbsoluteY, 3, 4, opAND)
	set(0x21, "AND", modeIndirectX, 2, 6, opAND)
	set(0x31, "AND", modeIndirectY, 2, 5, opAND)

	set(0x0A, "ASL", modeAccumulator, 1, 2, opASL)
	set(0x06, "ASL", modeZeroPage, 2, 5, opASL)
	set(0x16, "ASL", modeZeroPageX, 2, 6, opASL)
	set(0x0E, "ASL", modeAbsolute, 3, 6, opASL)
	set(0x1E, "ASL", modeAbsoluteX, 3, 7, opASL)

	set(0x24, "BIT", modeZeroPage, 2, 3, opBIT)
	set(0x2C, "BIT", modeAbsolute, 3, 4, opBIT)

	set(0x10, "BPL", modeNone, 2, 2, opBPL)
	set(0x30, "BMI", modeNone, 2, 2, opBMI)
	set(0x50, "BVC", modeNone, 2, 2, opBVC)
	set(0x70, "BVS", modeNone, 2, 2, opBVS)
	set(0x90, "BCC", modeNone, 2, 2, opBCC)
	set(0xB0, "BCS", modeNone, 2, 2, opBCS)
	set(0xD0, "BNE", modeNone, 2, 2, opBNE)
	set(0xF0, "BEQ", modeNone, 2, 2, opBEQ)

	set(0x00, "BRK", modeImplied, 1, 7, opBRK)

	set(0x18, "CLC", modeImplied, 1, 2, opCLC)
	set(0x38, "SEC", modeImplied, 1, 2, opSEC)
	set(0x58, "CLI", modeImplied, 1, 2, opCLI)
	set(0x78, "SEI", modeImplied, 1, 2, opSEI)
	set(0xB8, "CLV", modeImplied, 1, 2, opCLV)
	set(0xD8, "CLD", modeImplied, 1, 2, opCLD)
	set(0xF8, "SED", modeImplied, 1, 2, opSED)

	set(0xC9, "CMP", modeImmediate, 2, 2, opCMP)
	set(0xC5, "CMP", modeZeroPage, 2, 3, opCMP)
	set(0xD5, "CMP", modeZeroPageX, 2, 4, opCMP)
	set(0xCD, "CMP", modeAbsolute, 3, 4, opCMP)
	set(0xDD, "CMP", modeAbsoluteX, 3, 4, opCMP)
	set(0xD9, "CMP", modeAbsoluteY, 3, 4, opCMP)
	set(0xC1, "CMP", modeIndirectX, 2, 6, opCMP)
	set(0xD1, "CMP", modeIndirectY, 2, 5, opCMP)

	set(0xE0, "CPX", modeImmediate, 2, 2, opCPX)
	set(0xE4, "CPX", modeZeroPage, 2, 3, opCPX)
	set(0xEC, "CPX", modeAbsolute, 3, 4, opCPX)

	set(0xC0, "CPY", modeImmediate, 2, 2, opCPY)
	set(0xC4, "CPY", modeZeroPage, 2, 3, opCPY)
	set(0xCC, "CPY", modeAbsolute, 3, 4, opCPY)

	set(0xC6, "DEC", modeZeroPage, 2, 5, opDEC)
	set(0xD6, "DEC", modeZeroPageX, 2, 6, opDEC)
	set(0xCE, "DEC", modeAbsolute, 3, 6, opDEC)
	set(0xDE, "DEC", modeAbsoluteX, 3, 7, opDEC)

	set(0xCA, "DEX", modeImplied, 1, 2, opDEX)
	set(0x88, "DEY", modeImplied, 1, 2, opDEY)
	set(0xE8, "INX", modeImplied, 1, 2, opINX)
	set(0xC8, "INY", modeImplied, 1, 2, opINY)

	set(0x49, "EOR", modeImmediate, 2, 2, opEOR)
	set(0x45, "EOR", modeZeroPage, 2, 3, opEOR)
	set(0x55, "EOR", modeZeroPageX, 2, 4, opEOR)
	set(0x4D, "EOR", modeAbsolute, 3, 4, opEOR)
	set(0x5D, "EOR", modeAbsoluteX, 3, 4, opEOR)
	set(0x59, "EOR", modeAbsoluteY, 3, 4, opEOR)
	set(0x41, "EOR", modeIndirectX, 2, 6, opEOR)
	set(0x51, "EOR", modeIndirectY, 2, 5, opEOR)

	set(0xE6, "INC", modeZeroPage, 2, 5, opINC)
	set(0xF6, "INC", modeZeroPageX, 2, 6, opINC)
	set(0xEE, "INC", modeAbsolute, 3, 6, opINC)
	set(0xFE, "INC", modeAbsoluteX, 3, 7, opINC)

	set(0x4C, "JMP", modeAbsolute, 3, 3, opJMP)
	set(0x6C, "JMP", modeNone, 3, 5, opJMP)
	set(0x20, "JSR", modeNone, 3, 6, opJSR)
	set(0x60, "RTS", modeImplied, 1, 6, opRTS)
	set(0x40, "RTI", modeImplied, 1, 6, opRTI)

	set(0xA9, "LDA", modeImmediate, 2, 2, opLDA)
	set(0xA5, "LDA", modeZeroPage, 2, 3, opLDA)
	set(0xB5, "LDA", modeZeroPageX, 2, 4, opLDA)
	set(0xAD, "LDA", modeAbsolute, 3, 4, opLDA)
	set(0xBD, "LDA", modeAbsoluteX, 3, 4, opLDA)
	set(0xB9, "LDA", modeAbsoluteY, 3, 4, opLDA)
	set(0xA1, "LDA", modeIndirectX, 2, 6, opLDA)
	set(0xB1, "LDA", modeIndirectY, 2, 5, opLDA)

	set(0xA2, "LDX", modeImmediate, 2, 2, opLDX)
	set(0xA6, "LDX", modeZeroPage, 2, 3, opLDX)
	set(0xB6, "LDX", modeZeroPageY, 2, 4, opLDX)
	set(0xAE, "LDX", modeAbsolute, 3, 4, opLDX)
	set(0xBE, "LDX", modeAbsoluteY, 3, 4, opLDX)

	set(0xA0, "LDY", modeImmediate, 2, 2, opLDY)
	set(0xA4, "LDY", modeZeroPage, 2, 3, opLDY)
	set(0xB4, "LDY", modeZeroPageX, 2, 4, opLDY)
	set(0xAC, "LDY", modeAbsolute, 3, 4, opLDY)
	set(0xBC, "LDY", modeAbsoluteX, 3, 4, opLDY)

	set(0x4A, "LSR", modeAccumulator, 1, 2, opLSR)
	set(0x46, "LSR", modeZeroPage, 2, 5, opLSR)
	set(0x56, "LSR", modeZeroPageX, 2, 6, opLSR)
	set(0x4E, "LSR", modeAbsolute, 3, 6, opLSR)
	set(0x5E, "LSR", modeAbsoluteX, 3, 7, opLSR)

	set(0xEA, "NOP", modeImplied, 1, 2, opNOP)

	set(0x09, "ORA", modeImmediate, 2, 2, opORA)
	set(0x05, "ORA", modeZeroPage, 2, 3, opORA)
	set(0x15, "ORA", modeZeroPageX, 2, 4, opORA)
	set(0x0D, "ORA", modeAbsolute, 3, 4, opORA)
	set(0x1D, "ORA", modeAbsoluteX, 3, 4, opORA)
	set(0x19, "ORA", modeAbsoluteY, 3, 4, opORA)
	set(0x01, "ORA", modeIndirectX, 2, 6, opORA)
	set(0x11, "ORA", modeIndirectY, 2, 5, opORA)

	set(0x48, "PHA", modeImplied, 1, 3, opPHA)
	set(0x08, "PHP", modeImplied, 1, 3, opPHP)
	set(0x68, "PLA", modeImplied, 1, 4, opPLA)
	set(0x28, "PLP", modeImplied, 1, 4, opPLP)

	set(0x2A, "ROL", modeAccumulator, 1, 2, opROL)
	set(0x26, "ROL", modeZeroPage, 2, 5, opROL)
	set(0x36, "ROL", modeZeroPageX, 2, 6, opROL)
	set(0x2E, "ROL", modeAbsolute, 3, 6, opROL)
	set(0x3E, "ROL", modeAbsoluteX, 3, 7, opROL)

	set(0x6A, "ROR", modeAccumulator, 1, 2, opROR)
	set(0x66, "ROR", modeZeroPage, 2, 5, opROR)
	set(0x76, "ROR", modeZeroPageX, 2, 6, opROR)
	set(0x6E, "ROR", modeAbsolute, 3, 6, opROR)
	set(0x7E, "ROR", modeAbsoluteX, 3, 7, opROR)

	set(0xE9, "SBC", modeImmediate, 2, 2, opSBC)
	set(0xE5, "SBC", modeZeroPage, 2, 3, opSBC)
	set(0xF5, "SBC", modeZeroPageX, 2, 4, opSBC)
	set(0xED, "SBC", modeAbsolute, 3, 4, opSBC)
	set(0xFD, "SBC", modeAbsoluteX, 3, 4, opSBC)
	set(0xF9, "SBC", modeAbsoluteY, 3, 4, opSBC)
	set(0xE1, "SBC", modeIndirectX, 2, 6, opSBC)
	set(0xF1, "SBC", modeIndirectY, 2, 5, opSBC)

	set(0x85, "STA", modeZeroPage, 2, 3, opSTA)
	set(0x95, "STA", modeZeroPageX, 2, 4, opSTA)
	set(0x8D, "STA", modeAbsolute, 3, 4, opSTA)
	set(0x9D, "STA", modeAbsoluteX, 3, 5, opSTA)
	set(0x99, "STA", modeAbsoluteY, 3, 5, opSTA)
	set(0x81, "STA", modeIndirectX, 2, 6, opSTA)
	set(0x91, "STA", modeIndirectY, 2, 6, opSTA)

	set(0x86, "STX", modeZeroPage, 2, 3, opSTX)
	set(0x96, "STX", modeZeroPageY, 2, 4, opSTX)
	set(0x8E, "STX", modeAbsolute, 3, 4, opSTX)

	set(0x84, "STY", modeZeroPage, 2, 3, opSTY)
	set(0x94, "STY", modeZeroPageX, 2, 4, opSTY)
	set(0x8C, "STY", modeAbsolute, 3, 4, opSTY)

	set(0xAA, "TAX", modeImplied, 1, 2, opTAX)
	set(0xA8, "TAY", modeImplied, 1, 2, opTAY)
	set(0xBA, "TSX", modeImplied, 1, 2, opTSX)
	set(0x8A, "TXA", modeImplied, 1, 2, opTXA)
	set(0x9A, "TXS", modeImplied, 1, 2, opTXS)
	set(0x98, "TYA", modeImplied, 1, 2, opTYA)

	// Unofficial opcodes.
	set(0x0B, "ANC", modeImmediate, 2, 2, opANC)
	set(0x2B, "ANC", modeImmediate, 2, 2, opANC)

	for _, op := range []byte{0x87, 0x97, 0x8F, 0x83} {
		mode := modeZeroPage
		bytes, cycles := byte(2), 3
		switch op {
		case 0x97:
			mode = modeZeroPageY
		case 0x8F:
			mode, bytes, cycles = modeAbsolute, 3, 4
		case 0x83:
			mode, cycles = modeIndirectX, 6
		}
		set(op, "SAX", mode, bytes, cycles, opSAX)
	}

	set(0x6B, "ARR", modeImmediate, 2, 2, opARR)
	set(0x4B, "ALR", modeImmediate, 2, 2, opALR)
	set(0xAB, "LXA", modeImmediate, 2, 2, opLXA)

	set(0x93, "AHX", modeIndirectY, 2, 6, opAHX)
	set(0x9F, "AHX", modeAbsoluteY, 3, 5, opAHX)

	set(0xCB, "AXS", modeImmediate, 2, 2, opAXS)
	set(0xEB, "SBC", modeImmediate, 2, 2, opSBC)

	for op, spec := range map[byte][3]int{
		0xC7: {int(modeZeroPage), 2, 5},
		0xD7: {int(modeZeroPageX), 2, 6},
		0xCF: {int(modeAbsolute), 3, 6},
		0xDF: {int(modeAbsoluteX), 3, 7},
		0xDB: {int(modeAbsoluteY), 3, 7},
		0xC3: {int(modeIndirectX), 2, 8},
		0xD3: {int(modeIndirectY), 2, 8},
	} {
		set(op, "DCP", addressingMode(spec[0]), byte(spec[1]), spec[2], opDCP)
	}

	for op, spec := range map[byte][3]int{
		0xE7: {int(modeZeroPage), 2, 5},
		0xF7: {int(modeZeroPageX), 2, 6},
		0xEF: {int(modeAbsolute), 3, 6},
		0xFF: {int(modeAbsoluteX), 3, 7},
		0xFB: {int(modeAbsoluteY), 3, 7},
		0xE3: {int(modeIndirectX), 2, 8},
		0xF3: {int(modeIndirectY), 2, 8},
	} {
		set(op, "ISB", addressingMode(spec[0]), byte(spec[1]), spec[2], opISB)
	}

	set(0xBB, "LAS", modeAbsoluteY, 3, 4, opLAS)

	for op, spec := range map[byte][3]int{
		0xA7: {int(modeZeroPage), 2, 3},
		0xB7: {int(modeZeroPageY), 2, 4},
		0xAF: {int(modeAbsolute), 3, 4},
		0xBF: {int(modeAbsoluteY), 3, 4},
		0xA3: {int(modeIndirectX), 2, 6},
		0xB3: {int(modeIndirectY), 2, 5},
	} {
		set(op, "LAX", addressingMode(spec[0]), byte(spec[1]), spec[2], opLAX)
	}

	for op, spec := range map[byte][3]int{
		0x27: {int(modeZeroPage), 2, 5},
		0x37: {int(modeZeroPageX), 2, 6},
		0x2F: {int(modeAbsolute), 3, 6},
		0x3F: {int(modeAbsoluteX), 3, 7},
		0x3B: {int(modeAbsoluteY), 3, 7},
		0x23: {int(modeIndirectX), 2, 8},
		0x33: {int(modeIndirectY), 2, 8},
	} {
		set(op, "RLA", addressingMode(spec[0]), byte(spec[1]), spec[2], opRLA)
	}

	for op, spec := range map[byte][3]int{
		0x67: {int(modeZeroPage), 2, 5},
		0x77: {int(modeZeroPageX), 2, 6},
		0x6F: {int(modeAbsolute), 3, 6},
		0x7F: {int(modeAbsoluteX), 3, 7},
		0x7B: {int(modeAbsoluteY), 3, 7},
		0x63: {int(modeIndirectX), 2, 8},
		0x73: {int(modeIndirectY), 2, 8},
	} {
		set(op, "RRA", addressingMode(spec[0]), byte(spec[1]), spec[2], opRRA)
	}

	for op, spec := range map[byte][3]int{
		0x07: {int(modeZeroPage), 2, 5},
		0x17: {int(modeZeroPageX), 2, 6},
		0x0F: {int(modeAbsolute), 3, 6},
		0x1F: {int(modeAbsoluteX), 3, 7},
		0x1B: {int(modeAbsoluteY), 3, 7},
		0x03: {int(modeIndirectX), 2, 8},
		0x13: {int(modeIndirectY), 2, 8},
	} {
		set(op, "SLO", addressingMode(spec[0]), byte(spec[1]), spec[2], opSLO)
	}

	for op, spec := range map[byte][3]int{
		0x47: {int(modeZeroPage), 2, 5},
		0x57: {int(modeZeroPageX), 2, 6},
		0x4F: {int(modeAbsolute), 3, 6},
		0x5F: {int(modeAbsoluteX), 3, 7},
		0x5B: {int(modeAbsoluteY), 3, 7},
		0x43: {int(modeIndirectX), 2, 8},
		0x53: {int(modeIndirectY), 2, 8},
	} {
		set(op, "SRE", addressingMode(spec[0]), byte(spec[1]), spec[2], opSRE)
	}

	set(0x9E, "SHX", modeAbsoluteY, 3, 5, opSHX)
	set(0x9C, "SHY", modeAbsoluteX, 3, 5, opSHY)
	set(0x9B, "TAS", modeAbsoluteY, 3, 5, opTAS)
	set(0x8B, "XAA", modeImmediate, 2, 2, opXAA)

	// *NOP: plain no-operand forms.
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA,
		0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2,
		0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, "NOP", modeImplied, 1, 2, opNOP)
	}

	// *NOP: zero-page / zero-page,X forms that do fetch an operand.
	for _, op := range []byte{0x04, 0x44, 0x64} {
		set(op, "NOP", modeZeroPage, 2, 3, nopRead)
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, "NOP", modeZeroPageX, 2, 4, nopRead)
	}
	// *NOP: absolute / absolute,X forms.
	set(0x0C, "NOP", modeAbsolute, 3, 4, nopRead)
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, "NOP", modeAbsoluteX, 3, 4, nopRead)
	}

	return t
}
