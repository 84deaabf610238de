package emu

// dacNeutral is the ladder midpoint, the level the board rests at with
// the port driving 0x80 (silence after the driver initializes).
const dacNeutral = 0x80

// DAC converts the 8-bit port A value to a signed sample. The real
// board is an R-2R ladder into an op-amp; the model is a zero-order
// hold sampled at the output rate.
type DAC struct {
	level uint8
}

// NewDAC returns a converter resting at the ladder midpoint.
func NewDAC() *DAC {
	return &DAC{level: dacNeutral}
}

// Set latches a new port value.
func (d *DAC) Set(v uint8) {
	d.level = v
}

// Level returns the current port value.
func (d *DAC) Level() uint8 {
	return d.level
}

// Sample returns the held level as a float32 in [-1, 1). 0x80 maps to
// zero so the resting board is silent.
func (d *DAC) Sample() float32 {
	return (float32(d.level) - 128.0) / 128.0
}

// Reset returns the ladder to the midpoint.
func (d *DAC) Reset() {
	d.level = dacNeutral
}
