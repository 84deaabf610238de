package emu

import "testing"

// Chip-side register addresses as they arrive through the socket
// adaptation (chip A4 held high).
const (
	regPortA = 0x10
	regDDRA  = 0x11
	regPortB = 0x12
	regDDRB  = 0x13
	regFlags = 0x15
)

// TestRIOT_PortOutput verifies output latches read back through the
// DDR mask.
func TestRIOT_PortOutput(t *testing.T) {
	r := NewRIOT()

	r.Write(regDDRA, false, 0xFF)
	r.Write(regPortA, false, 0x3C)
	if v := r.Read(regPortA, false); v != 0x3C {
		t.Errorf("port A readback: expected 0x3C, got 0x%02X", v)
	}
	if v := r.OutputA(); v != 0x3C {
		t.Errorf("output latch: expected 0x3C, got 0x%02X", v)
	}

	// input bits read the external lines, not the latch
	r.Write(regDDRA, false, 0x0F)
	if v := r.Read(regPortA, false); v != 0xFC {
		t.Errorf("mixed-direction port A: expected 0xFC, got 0x%02X", v)
	}
}

// TestRIOT_OutputLatchIgnoresDDR verifies the output latch itself is
// independent of direction, the way the DAC sees it.
func TestRIOT_OutputLatchIgnoresDDR(t *testing.T) {
	r := NewRIOT()

	r.Write(regPortA, false, 0x80)
	if v := r.OutputA(); v != 0x80 {
		t.Errorf("output latch with DDR inputs: expected 0x80, got 0x%02X", v)
	}
}

// TestRIOT_PortBInputSampling verifies external lines commit one cycle
// after they change.
func TestRIOT_PortBInputSampling(t *testing.T) {
	r := NewRIOT()
	sw := NewSwitches()
	r.PortBInput = sw

	r.Tick()
	r.Tick()
	if v := r.Read(regPortB, false); v != 0xD0 {
		t.Errorf("idle port B: expected 0xD0, got 0x%02X", v)
	}

	sw.SetSoundCode(0x05)
	r.Tick()
	if v := r.Read(regPortB, false); v != 0xD0 {
		t.Errorf("port B before commit: expected 0xD0, got 0x%02X", v)
	}
	r.Tick()
	if v := r.Read(regPortB, false); v != 0xD5 {
		t.Errorf("port B after commit: expected 0xD5, got 0x%02X", v)
	}
}

// TestRIOT_RAM verifies the 128-byte RAM round trips and survives a
// reset but not power-on.
func TestRIOT_RAM(t *testing.T) {
	r := NewRIOT()

	for i := uint16(0); i < 0x80; i++ {
		r.Write(i, true, uint8(i)+1)
	}
	r.Reset()
	for i := uint16(0); i < 0x80; i++ {
		if v := r.Read(i, true); v != uint8(i)+1 {
			t.Errorf("RAM 0x%02X after reset: expected 0x%02X, got 0x%02X", i, uint8(i)+1, v)
		}
	}

	r.PowerOn()
	if v := r.Read(0x10, true); v != 0x00 {
		t.Errorf("RAM after power-on: expected 0x00, got 0x%02X", v)
	}
}

// TestRIOT_TimerCountdown verifies the four prescale intervals.
func TestRIOT_TimerCountdown(t *testing.T) {
	testCases := []struct {
		addr     uint16
		interval int
	}{
		{0x14, 1},
		{0x15, 8},
		{0x16, 64},
		{0x17, 1024},
	}

	for _, tc := range testCases {
		r := NewRIOT()
		r.Write(tc.addr, false, 10)

		for i := 0; i < 3*tc.interval; i++ {
			r.Tick()
		}
		if v := r.Read(0x14, false); v != 7 {
			t.Errorf("interval %d after 3 periods: expected 7, got %d", tc.interval, v)
		}
	}
}

// TestRIOT_TimerExpiry verifies the flag sets on underflow, the timer
// free-runs afterwards, and a timer read clears the flag.
func TestRIOT_TimerExpiry(t *testing.T) {
	r := NewRIOT()
	r.Write(0x15, false, 2) // interval 8

	for i := 0; i < 2*8; i++ {
		r.Tick()
	}
	if v := r.Read(regFlags, false); v&0x80 != 0 {
		t.Errorf("timer flag before underflow: expected clear, got 0x%02X", v)
	}

	r.Tick() // hits 0, one more period to wrap
	for i := 0; i < 8; i++ {
		r.Tick()
	}
	if v := r.Read(regFlags, false); v&0x80 == 0 {
		t.Errorf("timer flag after underflow: expected set, got 0x%02X", v)
	}

	// after underflow the counter runs at the clock rate
	before := r.Read(0x14, false)
	r.Tick()
	r.Tick()
	after := r.Read(0x14, false)
	if before-after != 2 {
		t.Errorf("free-running decrement: expected 2, got %d", before-after)
	}

	// the timer read above cleared the flag
	if v := r.Read(regFlags, false); v&0x80 != 0 {
		t.Errorf("timer flag after timer read: expected clear, got 0x%02X", v)
	}
}

// TestRIOT_TimerIRQEnable verifies address bit 3 controls the
// interrupt enable on both loads and reads.
func TestRIOT_TimerIRQEnable(t *testing.T) {
	r := NewRIOT()

	r.Write(0x1C, false, 1) // interval 1, interrupts enabled
	for i := 0; i < 4; i++ {
		r.Tick()
	}
	if !r.Raised() {
		t.Errorf("interrupt after enabled underflow: expected raised")
	}

	// reading via an address with bit 3 clear drops the enable
	r.Read(0x14, false)
	r.Write(0x14, false, 1)
	for i := 0; i < 4; i++ {
		r.Tick()
	}
	if r.Raised() {
		t.Errorf("interrupt after disabled underflow: expected not raised")
	}
}

// TestRIOT_TimerReloadClearsFlag verifies loading the timer clears a
// pending expiry.
func TestRIOT_TimerReloadClearsFlag(t *testing.T) {
	r := NewRIOT()

	r.Write(0x14, false, 0)
	r.Tick()
	r.Write(0x14, false, 50)
	if v := r.Read(regFlags, false); v&0x80 != 0 {
		t.Errorf("timer flag after reload: expected clear, got 0x%02X", v)
	}
}

// TestRIOT_EdgeDetect verifies PA7 edge detection with both
// polarities and the flag-read clear.
func TestRIOT_EdgeDetect(t *testing.T) {
	r := NewRIOT()
	r.Write(regDDRA, false, 0xFF)
	r.Write(regPortA, false, 0x80)
	r.Tick()

	// default polarity is negative
	r.Write(regPortA, false, 0x00)
	r.Tick()
	if v := r.Read(regFlags, false); v&0x40 == 0 {
		t.Errorf("edge flag after negative edge: expected set, got 0x%02X", v)
	}
	// the read cleared it
	if v := r.Read(regFlags, false); v&0x40 != 0 {
		t.Errorf("edge flag after flag read: expected clear, got 0x%02X", v)
	}

	// rising edge must not trigger in negative mode
	r.Write(regPortA, false, 0x80)
	r.Tick()
	if v := r.Read(regFlags, false); v&0x40 != 0 {
		t.Errorf("edge flag after positive edge in negative mode: got 0x%02X", v)
	}

	// switch to positive polarity (edge control is a direct chip
	// write; the board's socket wiring cannot reach it)
	r.Write(0x05, false, 0x01)
	r.Write(regPortA, false, 0x00)
	r.Tick()
	r.Write(regPortA, false, 0x80)
	r.Tick()
	if v := r.Read(regFlags, false); v&0x40 == 0 {
		t.Errorf("edge flag after positive edge: expected set, got 0x%02X", v)
	}
}
