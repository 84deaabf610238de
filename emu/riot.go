package emu

import (
	cio "github.com/jmchacon/6502/io"
)

// Timer prescaler intervals, selected by address bits 1..0 of a timer
// load. The interval collapses to 1 once the counter has expired.
const (
	tim1T    = 1
	tim8T    = 8
	tim64T   = 64
	tim1024T = 1024
)

// RIOT models the board's combined RAM/I/O/timer chip. The layout was
// designed around a 6530; the part fitted is its 6532 replacement, so
// the register file, the 128-byte RAM, the PA7 edge detect and the
// four-interval timer all follow the 6532 data sheet. The bus maps the
// processor's address lines onto the chip's inputs (see riotAddr).
//
// Port wiring on this board:
//
//	port A: 8-bit audio value, feeding the DAC ladder directly
//	port B: bits 0-3 sound-select, bit 4 attract, bit 5 ground,
//	        bit 6 interrupt-acknowledge output, bit 7 strapped high
type RIOT struct {
	// PortAInput and PortBInput are sampled on every chip clock; bits
	// configured as inputs by the DDRs read through to these callbacks.
	PortAInput cio.Port8
	PortBInput cio.Port8

	ram [0x80]uint8

	outA uint8 // port A output latch
	ddrA uint8
	outB uint8 // port B output latch
	ddrB uint8

	// committed and pending input latches. inA/inB are the values
	// visible during the current cycle; holdA/holdB were sampled at the
	// end of the previous cycle and commit on the next Tick, so a read
	// never observes a line change from the same clock edge.
	inA   uint8
	inB   uint8
	holdA uint8
	holdB uint8

	// PA7 edge detect
	prevPA7      bool
	edgePositive bool
	edgeFlag     bool
	irqEnEdge    bool

	// countdown timer
	timer      uint8
	interval   uint16
	subCount   uint16
	expired    bool
	timerFlag  bool
	irqEnTimer bool
}

// NewRIOT returns a powered-on chip with both ports configured as
// inputs and the RAM zeroed.
func NewRIOT() *RIOT {
	r := &RIOT{}
	r.PowerOn()
	return r
}

// PowerOn clears the RAM and performs a reset.
func (r *RIOT) PowerOn() {
	for i := range r.ram {
		r.ram[i] = 0x00
	}
	r.Reset()
}

// Reset returns every register to its power-up state. RAM contents
// survive a reset; only PowerOn clears them.
func (r *RIOT) Reset() {
	r.outA = 0x00
	r.ddrA = 0x00
	r.outB = 0x00
	r.ddrB = 0x00
	r.inA = 0xFF
	r.inB = 0xFF
	r.holdA = 0xFF
	r.holdB = 0xFF
	r.prevPA7 = true
	r.edgePositive = false
	r.edgeFlag = false
	r.irqEnEdge = false
	r.timer = 0x00
	r.interval = tim1T
	r.subCount = tim1T
	r.expired = false
	r.timerFlag = false
	r.irqEnTimer = false
}

// pinsA returns the port A pin levels: outputs driven from the latch,
// inputs reflecting the committed external lines.
func (r *RIOT) pinsA() uint8 {
	return (r.outA & r.ddrA) | (r.inA &^ r.ddrA)
}

// PortB returns the port B pin levels as external hardware sees them.
// The interrupt latch watches bit 6 of this value.
func (r *RIOT) PortB() uint8 {
	return (r.outB & r.ddrB) | (r.inB &^ r.ddrB)
}

// OutputA returns the port A output latch. The DAC ladder hangs
// directly off the port A drivers, so it follows the latch regardless
// of the direction register.
func (r *RIOT) OutputA() uint8 {
	return r.outA
}

// Tick advances the chip by one of its clock cycles: runs the PA7 edge
// detector on the previous cycle's pin levels, commits the held input
// latches, samples the live lines, and counts the timer down.
func (r *RIOT) Tick() {
	pa7 := r.pinsA()&0x80 != 0
	if pa7 != r.prevPA7 && pa7 == r.edgePositive {
		r.edgeFlag = true
	}
	r.prevPA7 = pa7

	r.inA = r.holdA
	r.inB = r.holdB
	if r.PortAInput != nil {
		r.holdA = r.PortAInput.Input()
	}
	if r.PortBInput != nil {
		r.holdB = r.PortBInput.Input()
	}

	if !r.expired {
		r.subCount--
		if r.subCount == 0 {
			r.subCount = r.interval
			if r.timer == 0 {
				// wraps and free-runs at the clock rate until reloaded
				r.timer = 0xFF
				r.expired = true
				r.timerFlag = true
			} else {
				r.timer--
			}
		}
		return
	}
	r.timer--
}

// Read returns RAM (register-select input low) or a register
// (register-select high). Register addresses are masked to the chip's
// five decoded address lines, which produces the data sheet's aliases.
// Reads have the documented side effects only: a timer read clears the
// timer flag and latches the interrupt-enable from address bit 3, and a
// flag-register read clears the edge-detect flag.
func (r *RIOT) Read(addr uint16, ram bool) uint8 {
	if ram {
		return r.ram[addr&0x7F]
	}
	addr &= 0x1F
	if addr&0x04 == 0 {
		switch addr & 0x03 {
		case 0x00:
			return (r.outA & r.ddrA) | (r.inA &^ r.ddrA)
		case 0x01:
			return r.ddrA
		case 0x02:
			return (r.outB & r.ddrB) | (r.inB &^ r.ddrB)
		default:
			return r.ddrB
		}
	}
	if addr&0x01 == 0 {
		r.timerFlag = false
		r.irqEnTimer = addr&0x08 != 0
		return r.timer
	}
	var v uint8
	if r.timerFlag {
		v |= 0x80
	}
	if r.edgeFlag {
		v |= 0x40
	}
	r.edgeFlag = false
	return v
}

// Write stores to RAM or a register. Writes with address bit 2 set and
// bit 4 clear program the edge detector (bit 0 polarity, bit 3 enable);
// with bit 4 set they load the timer, address bits 1..0 selecting the
// prescale interval and bit 3 the interrupt enable.
func (r *RIOT) Write(addr uint16, ram bool, val uint8) {
	if ram {
		r.ram[addr&0x7F] = val
		return
	}
	addr &= 0x1F
	if addr&0x04 == 0 {
		switch addr & 0x03 {
		case 0x00:
			r.outA = val
		case 0x01:
			r.ddrA = val
		case 0x02:
			r.outB = val
		default:
			r.ddrB = val
		}
		return
	}
	if addr&0x10 == 0 {
		r.edgePositive = addr&0x01 != 0
		r.irqEnEdge = addr&0x08 != 0
		return
	}
	r.timer = val
	r.timerFlag = false
	r.expired = false
	r.irqEnTimer = addr&0x08 != 0
	switch addr & 0x03 {
	case 0x00:
		r.interval = tim1T
	case 0x01:
		r.interval = tim8T
	case 0x02:
		r.interval = tim64T
	default:
		r.interval = tim1024T
	}
	r.subCount = r.interval
}

// Raised implements irq.Sender for the chip's own /IRQ pin. On this
// board the pin is not routed to the processor (the discrete latch is
// the only interrupt source), but the flag logic is part of the chip
// contract and software may still program it.
func (r *RIOT) Raised() bool {
	return (r.timerFlag && r.irqEnTimer) || (r.edgeFlag && r.irqEnEdge)
}
