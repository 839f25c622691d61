package nes

// systemPalette maps a 6-bit PPU color index (0x00-0x3F) to its display RGB
// triple.
//
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var systemPalette = [64][3]byte{
	{0x6D, 0x6D, 0x6D}, {0x00, 0x24, 0x92}, {0x00, 0x00, 0xDB}, {0x6D, 0x49, 0xDB},
	{0x92, 0x00, 0x6D}, {0xB6, 0x00, 0x6D}, {0xB6, 0x24, 0x00}, {0x92, 0x49, 0x00},
	{0x6D, 0x49, 0x00}, {0x24, 0x49, 0x00}, {0x00, 0x6D, 0x24}, {0x00, 0x92, 0x00},
	{0x00, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xB6, 0xB6, 0xB6}, {0x00, 0x6D, 0xDB}, {0x00, 0x49, 0xFF}, {0x92, 0x00, 0xFF},
	{0xB6, 0x00, 0xFF}, {0xFF, 0x00, 0x92}, {0xFF, 0x00, 0x00}, {0xDB, 0x6D, 0x00},
	{0x92, 0x6D, 0x00}, {0x24, 0x92, 0x00}, {0x00, 0x92, 0x00}, {0x00, 0xB6, 0x6D},
	{0x00, 0x92, 0x92}, {0x24, 0x24, 0x24}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0x6D, 0xB6, 0xFF}, {0x92, 0x92, 0xFF}, {0xDB, 0x6D, 0xFF},
	{0xFF, 0x00, 0xFF}, {0xFF, 0x6D, 0xFF}, {0xFF, 0x92, 0x00}, {0xFF, 0xB6, 0x00},
	{0xDB, 0xDB, 0x00}, {0x6D, 0xDB, 0x00}, {0x00, 0xFF, 0x00}, {0x49, 0xFF, 0xDB},
	{0x00, 0xFF, 0xFF}, {0x49, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0xB6, 0xDB, 0xFF}, {0xDB, 0xB6, 0xFF}, {0xFF, 0xB6, 0xFF},
	{0xFF, 0x92, 0xFF}, {0xFF, 0xB6, 0xB6}, {0xFF, 0xDB, 0x92}, {0xFF, 0xFF, 0x49},
	{0xFF, 0xFF, 0x6D}, {0xB6, 0xFF, 0x49}, {0x92, 0xFF, 0x6D}, {0x49, 0xFF, 0xDB},
	{0x92, 0xDB, 0xFF}, {0x92, 0x92, 0x92}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}
