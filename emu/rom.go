package emu

// romWindow is the size of the program ROM address window: the decoder
// feeds address bits 10..0 to the ROM, so 2KB is visible.
const romWindow = 0x800

// ROM is the game-specific sound driver ROM. The image is opaque; the
// board never interprets it beyond serving read cycles.
type ROM struct {
	data [romWindow]uint8
}

// NewROM builds the ROM from an image. Images smaller than the 2KB
// window mirror through it, matching how a smaller part's unused high
// address line repeats the contents on real boards. An empty image
// reads as all-ones (unprogrammed EPROM).
func NewROM(image []byte) *ROM {
	r := &ROM{}
	if len(image) == 0 {
		for i := range r.data {
			r.data[i] = 0xFF
		}
		return r
	}
	for i := range r.data {
		r.data[i] = image[i%len(image)]
	}
	return r
}

// Read returns the byte selected by address bits 10..0.
func (r *ROM) Read(addr uint16) uint8 {
	return r.data[addr&(romWindow-1)]
}
