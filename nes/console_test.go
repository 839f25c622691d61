package nes

import "testing"

func syntheticROM(prgBytes ...byte) []byte {
	header := makeHeader(1, 1, 0, 0)
	prg := make([]byte, prgROMPageSize)
	copy(prg, prgBytes)
	// Reset vector: a single 16K bank mirrors into both CPU halves, so
	// 0x3FFC (== 0xBFFC, which mirrors to 0xFFFC) points back at 0x8000.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	chr := make([]byte, chrROMPageSize)
	rom := append(append(header, prg...), chr...)
	return rom
}

func TestNewConsoleRunsUntilHalt(t *testing.T) {
	rom := syntheticROM(0xA9, 0x42, 0x00) // LDA #$42 ; BRK
	console, err := NewConsole(rom, nil)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}

	for i := 0; i < 2 && !console.Halted(); i++ {
		console.Step()
	}
	if !console.Halted() {
		t.Fatal("console should have halted on BRK")
	}
	if console.cpu.A != 0x42 {
		t.Errorf("A = 0x%02x, want 0x42", console.cpu.A)
	}
}

func TestNewConsoleRejectsBadROM(t *testing.T) {
	if _, err := NewConsole([]byte{0, 1, 2, 3}, nil); err == nil {
		t.Fatal("expected an error for a truncated/invalid ROM")
	}
}
