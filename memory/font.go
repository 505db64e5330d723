// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

const (
	GLYPH_COUNT = 16 // Number of glyphs in a font.
	GLYPH_SIZE  = 5  // Bytes per glyph sprite.
)

// Font is a table of hexadecimal digit sprites, one row per byte.
type Font [GLYPH_COUNT][GLYPH_SIZE]byte

// HexFont returns the standard 4x5 hexadecimal glyph table.
func HexFont() Font {
	return Font{
		{0xf0, 0x90, 0x90, 0x90, 0xf0}, // 0
		{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
		{0xf0, 0x10, 0xf0, 0x80, 0xf0}, // 2
		{0xf0, 0x10, 0xf0, 0x10, 0xf0}, // 3
		{0x90, 0x90, 0xf0, 0x10, 0x10}, // 4
		{0xf0, 0x80, 0xf0, 0x10, 0xf0}, // 5
		{0xf0, 0x80, 0xf0, 0x90, 0xf0}, // 6
		{0xf0, 0x10, 0x20, 0x40, 0x40}, // 7
		{0xf0, 0x90, 0xf0, 0x90, 0xf0}, // 8
		{0xf0, 0x90, 0xf0, 0x10, 0xf0}, // 9
		{0xf0, 0x90, 0xf0, 0x90, 0x90}, // A
		{0xe0, 0x90, 0xe0, 0x90, 0xe0}, // B
		{0xf0, 0x80, 0x80, 0x80, 0xf0}, // C
		{0xe0, 0x90, 0x90, 0x90, 0xe0}, // D
		{0xf0, 0x80, 0xf0, 0x80, 0xf0}, // E
		{0xf0, 0x80, 0xf0, 0x80, 0x80}, // F
	}
}

// GlyphAddress returns the memory address of a glyph.
func GlyphAddress(glyph int) int {
	return FONT_START + glyph*GLYPH_SIZE
}

// Bytes returns the font as a flat byte slice, in glyph order.
func (font *Font) Bytes() (data []byte) {
	data = make([]byte, 0, GLYPH_COUNT*GLYPH_SIZE)
	for _, glyph := range font {
		data = append(data, glyph[:]...)
	}
	return
}
