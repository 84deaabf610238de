package emu

import "testing"

// TestSwitches_Idle verifies the idle connector levels on port B.
func TestSwitches_Idle(t *testing.T) {
	sw := NewSwitches()
	if v := sw.Input(); v != 0xD0 {
		t.Errorf("idle port B: expected 0xD0, got 0x%02X", v)
	}
}

// TestSwitches_SoundCode verifies the select lines land inverted on
// bits 0-3.
func TestSwitches_SoundCode(t *testing.T) {
	sw := NewSwitches()

	testCases := []struct {
		code uint8
		port uint8
	}{
		{0x01, 0xD1},
		{0x0F, 0xDF},
		{0x0A, 0xDA},
		{0x00, 0xD0},
	}

	for _, tc := range testCases {
		sw.SetSoundCode(tc.code)
		if v := sw.Input(); v != tc.port {
			t.Errorf("code 0x%X: expected port 0x%02X, got 0x%02X", tc.code, tc.port, v)
		}
	}
}

// TestSwitches_Attract verifies the attract line reaches bit 4 without
// inversion: asserted (low) reads 0.
func TestSwitches_Attract(t *testing.T) {
	sw := NewSwitches()

	sw.SetAttract(true)
	if v := sw.Input(); v&0x10 != 0 {
		t.Errorf("attract asserted: expected bit 4 low, got 0x%02X", v)
	}
	sw.SetAttract(false)
	if v := sw.Input(); v&0x10 == 0 {
		t.Errorf("attract released: expected bit 4 high, got 0x%02X", v)
	}
}

// TestSwitches_GroundAndStraps verifies bit 5 reads low and bits 6-7
// read high regardless of the lines.
func TestSwitches_GroundAndStraps(t *testing.T) {
	sw := NewSwitches()
	sw.SetSoundCode(0x0F)
	sw.SetAttract(true)

	v := sw.Input()
	if v&0x20 != 0 {
		t.Errorf("bit 5: expected grounded, got 0x%02X", v)
	}
	if v&0xC0 != 0xC0 {
		t.Errorf("bits 6-7: expected high, got 0x%02X", v)
	}
}

// TestSwitches_Pulse verifies a timed pulse holds for its duration and
// releases.
func TestSwitches_Pulse(t *testing.T) {
	sw := NewSwitches()
	sw.PulseSound(0x03, 5)

	for i := 0; i < 5; i++ {
		if !sw.SoundActive() {
			t.Errorf("tick %d: expected lines active during pulse", i)
		}
		sw.Tick()
	}
	if sw.SoundActive() {
		t.Errorf("expected lines released after pulse")
	}
}

// TestSwitches_PulseMergesWithHeldLines verifies pulses OR with
// manually held lines.
func TestSwitches_PulseMergesWithHeldLines(t *testing.T) {
	sw := NewSwitches()
	sw.SetSoundCode(0x01)
	sw.PulseSound(0x02, 2)

	if v := sw.Input() & 0x0F; v != 0x03 {
		t.Errorf("merged lines: expected 0x3, got 0x%X", v)
	}
	sw.Tick()
	sw.Tick()
	if v := sw.Input() & 0x0F; v != 0x01 {
		t.Errorf("after pulse: expected 0x1, got 0x%X", v)
	}
}

// TestSwitches_TestLine verifies the test button feeds the
// non-maskable input and timed pulses release it.
func TestSwitches_TestLine(t *testing.T) {
	sw := NewSwitches()
	nmi := testLine{sw: sw}

	if nmi.Raised() {
		t.Errorf("test line idle: expected not raised")
	}
	sw.PulseTest(3)
	if !nmi.Raised() {
		t.Errorf("test line pulsed: expected raised")
	}
	for i := 0; i < 3; i++ {
		sw.Tick()
	}
	if nmi.Raised() {
		t.Errorf("test line after pulse: expected not raised")
	}
}
