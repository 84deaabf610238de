package emu

// Timing holds the clock rates for the board's two clock domains.
type Timing struct {
	RefClockHz int // reference crystal driving the divider and glue logic
	DacClockHz int // independent sample clock for the analog stage
}

// DefaultTiming is the stock board clocking: the 3.579545 MHz NTSC
// colorburst crystal, with the analog stage sampled at 48 kHz.
var DefaultTiming = Timing{
	RefClockHz: 3579545,
	DacClockHz: 48000,
}

// ClockDivider derives the processor clock from the reference clock.
// A free-running 2-bit counter divides the reference by four with 50%
// duty; the counter wrapping to zero is the rising edge of phase 2, the
// edge on which the processor and the peripheral chip are clocked.
type ClockDivider struct {
	phase uint8
}

// NewClockDivider returns a divider with the counter at zero.
func NewClockDivider() *ClockDivider {
	return &ClockDivider{}
}

// Tick advances the divider by one reference cycle and reports whether
// this cycle carries a processor-clock edge.
func (c *ClockDivider) Tick() bool {
	c.phase = (c.phase + 1) & 0x03
	return c.phase == 0
}

// Phi2 reports the level of the processor clock's phase-2 output.
func (c *ClockDivider) Phi2() bool {
	return c.phase < 2
}

// Phi1 reports the complement of phase 2.
func (c *ClockDivider) Phi1() bool {
	return !c.Phi2()
}

// Reset returns the counter to zero.
func (c *ClockDivider) Reset() {
	c.phase = 0
}
