package emu

// IntLatch is the discrete JK flip-flop that drives the processor's
// /IRQ line. The clock input is the OR of the four normalized
// sound-select lines: the latch sets on the falling edge of that OR,
// so a new interrupt fires only when the cabinet releases all select
// lines after having driven at least one. The asynchronous clear input
// hangs off the chip's port B bit 6; software acknowledges by pulling
// the line low, and clear wins over set.
type IntLatch struct {
	asserted bool
	prevOr   bool
}

// Step evaluates the latch for one reference clock. soundActive is the
// OR of the normalized select lines; ackLow is true while the
// acknowledge output holds the clear input low.
func (l *IntLatch) Step(soundActive, ackLow bool) {
	if ackLow {
		l.asserted = false
		l.prevOr = soundActive
		return
	}
	if l.prevOr && !soundActive {
		l.asserted = true
	}
	l.prevOr = soundActive
}

// Raised implements irq.Sender. True while the latch holds the
// processor's /IRQ line low.
func (l *IntLatch) Raised() bool {
	return l.asserted
}

// Reset releases the interrupt line and forgets any edge history.
func (l *IntLatch) Reset() {
	l.asserted = false
	l.prevOr = false
}
