package nes

import "testing"

func makeHeader(prgPages, chrPages, flags6, flags7 byte) []byte {
	h := make([]byte, 16)
	copy(h, nesTag[:])
	h[4] = prgPages
	h[5] = chrPages
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestNewCartridge(t *testing.T) {
	raw := makeHeader(2, 1, 0x31, 0x00)
	raw = append(raw, make([]byte, prgROMPageSize*2+chrROMPageSize)...)

	c, err := NewCartridge(raw)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.Mapper() != 3 {
		t.Errorf("mapper = %d, want 3", c.Mapper())
	}
	if c.Mirroring() != MirrorVertical {
		t.Errorf("mirroring = %v, want vertical", c.Mirroring())
	}
	if len(c.prgROM) != prgROMPageSize*2 {
		t.Errorf("prgROM len = %d, want %d", len(c.prgROM), prgROMPageSize*2)
	}
	if len(c.chrROM) != chrROMPageSize {
		t.Errorf("chrROM len = %d, want %d", len(c.chrROM), chrROMPageSize)
	}
}

func TestNewCartridgeSkipsTrainer(t *testing.T) {
	raw := makeHeader(1, 1, 0x31|0x04, 0x00)
	raw = append(raw, make([]byte, trainerBytes)...)
	raw = append(raw, make([]byte, prgROMPageSize+chrROMPageSize)...)
	raw[trainerBytes+inesHeaderBytes] = 0xAB

	c, err := NewCartridge(raw)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.prgROM[0] != 0xAB {
		t.Errorf("prgROM[0] = 0x%02x, want 0xAB (trainer not skipped correctly)", c.prgROM[0])
	}
}

func TestNewCartridgeRejectsNES2(t *testing.T) {
	raw := makeHeader(1, 1, 0x00, 0x08)
	raw = append(raw, make([]byte, prgROMPageSize+chrROMPageSize)...)

	if _, err := NewCartridge(raw); err == nil {
		t.Fatal("expected error for NES 2.0 header, got nil")
	}
}

func TestNewCartridgeRejectsBadTag(t *testing.T) {
	raw := makeHeader(1, 1, 0, 0)
	raw[0] = 0x00
	if _, err := NewCartridge(raw); err == nil {
		t.Fatal("expected error for bad tag, got nil")
	}
}

func TestCartridgeReadPRGMirrors16K(t *testing.T) {
	raw := makeHeader(1, 1, 0, 0)
	raw = append(raw, make([]byte, prgROMPageSize+chrROMPageSize)...)
	raw[inesHeaderBytes] = 0x42

	c, err := NewCartridge(raw)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got := c.readPRG(0x8000); got != 0x42 {
		t.Errorf("readPRG(0x8000) = 0x%02x, want 0x42", got)
	}
	if got := c.readPRG(0xC000); got != 0x42 {
		t.Errorf("readPRG(0xC000) = 0x%02x, want 0x42 (16K image should mirror)", got)
	}
}
