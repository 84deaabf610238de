package emu

// Bus is the board's address decoder, presented to the processor as
// its memory. The processor has twelve address lines; A11 selects the
// program ROM, otherwise the RIOT, with A9 driving the chip's
// RAM/register select.
//
// Bus implements the memory.Ram contract the processor core expects.
type Bus struct {
	rom  *ROM
	riot *RIOT
}

// NewBus wires the decoder to its chips.
func NewBus(rom *ROM, riot *RIOT) *Bus {
	return &Bus{rom: rom, riot: riot}
}

// riotAddr maps the processor's low address lines onto the chip's
// inputs. The socket was laid out for a 6530 and adapted for its 6532
// replacement: the chip's A4 is tied high and the bus lines A4 and A5
// arrive shifted up one input. The 6530 software's register offsets
// and its 64-byte RAM window land on the right 6532 locations through
// the data sheet's address aliases.
func riotAddr(addr uint16) uint16 {
	return (addr & 0x0F) | 0x10 | ((addr & 0x30) << 1)
}

// Read decodes one processor read.
func (b *Bus) Read(addr uint16) uint8 {
	addr &= 0x0FFF
	if addr&0x800 != 0 {
		return b.rom.Read(addr)
	}
	return b.riot.Read(riotAddr(addr), addr&0x200 == 0)
}

// Write decodes one processor write. Stores into the ROM window are
// discarded; the ROM never drives or latches the data bus on a write.
func (b *Bus) Write(addr uint16, val uint8) {
	addr &= 0x0FFF
	if addr&0x800 != 0 {
		return
	}
	b.riot.Write(riotAddr(addr), addr&0x200 == 0, val)
}

// Reset resets the RIOT. The ROM has no state.
func (b *Bus) Reset() {
	b.riot.Reset()
}

// PowerOn clears the RIOT, RAM included.
func (b *Bus) PowerOn() {
	b.riot.PowerOn()
}
