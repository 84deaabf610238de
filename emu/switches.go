package emu

// Switches models the board's input connector. All lines are active-low
// at the connector: the four sound-select lines S1/S2/S4/S8, the
// attract-mode line and the test line. The select lines pass through
// inverters on their way to the peripheral chip, so internally they are
// held as active-high bits 0-3.
type Switches struct {
	lines   uint8 // S1/S2/S4/S8 normalized, set bit = line pulled low
	attract bool  // attract line asserted (low)
	test    bool  // test line asserted (low)

	// timed pulses, counted down in reference-clock ticks
	pulseLines uint8
	pulseLeft  int
	testLeft   int
}

// NewSwitches returns the connector with every line idle.
func NewSwitches() *Switches {
	return &Switches{}
}

// Tick advances any timed pulses by one reference-clock cycle.
func (s *Switches) Tick() {
	if s.pulseLeft > 0 {
		s.pulseLeft--
		if s.pulseLeft == 0 {
			s.pulseLines = 0
		}
	}
	if s.testLeft > 0 {
		s.testLeft--
		if s.testLeft == 0 {
			s.test = false
		}
	}
}

// SetSoundLines drives the four select lines directly. true = line
// pulled low at the connector (active).
func (s *Switches) SetSoundLines(s1, s2, s4, s8 bool) {
	s.lines = 0
	if s1 {
		s.lines |= 0x01
	}
	if s2 {
		s.lines |= 0x02
	}
	if s4 {
		s.lines |= 0x04
	}
	if s8 {
		s.lines |= 0x08
	}
}

// SetSoundCode drives the select lines from a 4-bit sound code, code
// bit n pulling line Sn low.
func (s *Switches) SetSoundCode(code uint8) {
	s.lines = code & 0x0F
}

// PulseSound holds the given sound code active for refTicks reference
// cycles and then releases it, like the game strobing a sound command.
func (s *Switches) PulseSound(code uint8, refTicks int) {
	s.pulseLines = code & 0x0F
	s.pulseLeft = refTicks
}

// SetAttract drives the attract-mode line. true = asserted (low).
func (s *Switches) SetAttract(on bool) {
	s.attract = on
}

// SetTest drives the test line. true = asserted (low).
func (s *Switches) SetTest(on bool) {
	s.test = on
}

// PulseTest asserts the test line for refTicks reference cycles.
func (s *Switches) PulseTest(refTicks int) {
	s.test = true
	s.testLeft = refTicks
}

// TestAsserted reports the test line level.
func (s *Switches) TestAsserted() bool {
	return s.test
}

// active returns the normalized select lines, manual and pulsed merged.
func (s *Switches) active() uint8 {
	return (s.lines | s.pulseLines) & 0x0F
}

// SoundActive reports the OR of the normalized select lines, the signal
// the interrupt latch triggers from.
func (s *Switches) SoundActive() bool {
	return s.active() != 0
}

// Reset releases every line.
func (s *Switches) Reset() {
	*s = Switches{}
}

// Input implements the peripheral chip's port B input callback
// (jmchacon/6502 io.Port8). Bit layout on this board:
//
//	bits 0-3: sound-select lines, active high after the inverters
//	bit 4:    attract line level (active low, no inverter in its path)
//	bit 5:    grounded
//	bit 6:    pull-up; seen only while the port bit is an input
//	bit 7:    strapped high, selecting the "sound" driver mode
func (s *Switches) Input() uint8 {
	v := s.active()
	if !s.attract {
		v |= 0x10
	}
	v |= 0x40
	v |= 0x80
	return v
}

// testLine adapts the test switch to the processor's NMI input.
type testLine struct {
	sw *Switches
}

// Raised implements irq.Sender for the non-maskable input.
func (t testLine) Raised() bool {
	return t.sw.TestAsserted()
}

// pullUps is the port A input callback: nothing external drives port A,
// so input-configured bits read the pull-ups.
type pullUps struct{}

func (pullUps) Input() uint8 {
	return 0xFF
}
