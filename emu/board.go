package emu

import (
	"fmt"

	"github.com/jmchacon/6502/irq"
	"github.com/jmchacon/6502/memory"
)

// CoreFunc constructs a processor core wired to the given memory and
// interrupt lines. Tests substitute scripted cores through
// NewBoardWithCore.
type CoreFunc func(ram memory.Ram, irqLine, nmiLine irq.Sender) (Core, error)

// Board is the complete sound board: clock divider, program ROM, RIOT,
// address decoder, interrupt latch, DAC and processor, plus the
// cabinet-side lines feeding it.
//
// The board runs in the reference clock domain via TickRef. Audio is
// pulled out in the output sample domain via RunSamples, which
// advances the reference clock the right number of ticks per sample.
type Board struct {
	timing Timing

	clk   ClockDivider
	rom   *ROM
	riot  *RIOT
	bus   *Bus
	sws   *Switches
	latch IntLatch
	dac   *DAC
	cpu   Core

	// fixed point (16.16) reference ticks per output sample
	ticksPerSampleFP uint64
	tickAccumFP      uint64
}

// NewBoard builds a board around the given ROM image using the real
// processor core.
func NewBoard(romImage []byte, timing Timing) (*Board, error) {
	return NewBoardWithCore(romImage, timing, newCore)
}

// NewBoardWithCore builds a board with a caller-supplied processor
// constructor.
func NewBoardWithCore(romImage []byte, timing Timing, mk CoreFunc) (*Board, error) {
	if timing.RefClockHz <= 0 || timing.DacClockHz <= 0 {
		return nil, fmt.Errorf("invalid timing %+v", timing)
	}

	b := &Board{
		timing: timing,
		rom:    NewROM(romImage),
		riot:   NewRIOT(),
		sws:    NewSwitches(),
		dac:    NewDAC(),
	}
	b.riot.PortAInput = pullUps{}
	b.riot.PortBInput = b.sws
	b.bus = NewBus(b.rom, b.riot)
	b.ticksPerSampleFP = (uint64(timing.RefClockHz) << 16) / uint64(timing.DacClockHz)

	core, err := mk(b.bus, &b.latch, testLine{sw: b.sws})
	if err != nil {
		return nil, err
	}
	b.cpu = core
	return b, nil
}

// TickRef advances the board by one reference clock. The divider gates
// the RIOT and processor to every fourth tick; the select-line pulse
// counters and the interrupt latch run in the reference domain.
func (b *Board) TickRef() error {
	b.sws.Tick()

	if b.clk.Tick() {
		b.riot.Tick()
		if err := b.cpu.Tick(); err != nil {
			return fmt.Errorf("processor tick: %w", err)
		}
		if err := b.cpu.TickDone(); err != nil {
			return fmt.Errorf("processor tick done: %w", err)
		}
	}

	b.latch.Step(b.sws.SoundActive(), b.riot.PortB()&0x40 == 0)
	return nil
}

// TickDac advances the output clock domain by one tick: the converter
// samples the committed port A value and holds it. The two domains
// share nothing else; the port read here may race a processor write,
// exactly as the hardware does.
func (b *Board) TickDac() float32 {
	b.dac.Set(b.riot.OutputA())
	return b.dac.Sample()
}

// RunSamples fills dst with output samples, running the board the
// matching number of reference clocks for each output tick. The
// fractional tick remainder carries between calls so long renders stay
// phase exact.
func (b *Board) RunSamples(dst []float32) error {
	for i := range dst {
		b.tickAccumFP += b.ticksPerSampleFP
		n := b.tickAccumFP >> 16
		b.tickAccumFP &= 0xFFFF
		for ; n > 0; n-- {
			if err := b.TickRef(); err != nil {
				return err
			}
		}
		dst[i] = b.TickDac()
	}
	return nil
}

// Timing returns the board's clock rates.
func (b *Board) Timing() Timing {
	return b.timing
}

// DACLevel returns the current 8-bit ladder value.
func (b *Board) DACLevel() uint8 {
	return b.dac.Level()
}

// IRQRaised reports whether the interrupt latch is holding the
// processor's /IRQ line low.
func (b *Board) IRQRaised() bool {
	return b.latch.Raised()
}

// SetSoundCode drives the four sound-select lines with a 4-bit code,
// already normalized to active high. The lines hold until changed.
func (b *Board) SetSoundCode(code uint8) {
	b.sws.SetSoundCode(code)
}

// PulseSound drives a sound code for refTicks reference clocks and
// then releases it. The release edge is what fires the interrupt
// latch, so a pulse is the normal way to request a sound.
func (b *Board) PulseSound(code uint8, refTicks int) {
	b.sws.PulseSound(code, refTicks)
}

// SetAttract drives the attract-mode line. The line is active low on
// the connector; on reports the asserted (low) state.
func (b *Board) SetAttract(on bool) {
	b.sws.SetAttract(on)
}

// PulseTest asserts the test button for refTicks reference clocks.
// The button reaches the processor's /NMI pin directly.
func (b *Board) PulseTest(refTicks int) {
	b.sws.PulseTest(refTicks)
}

// Reset returns the board to its power-on reset state. ROM contents
// and RIOT RAM survive, matching a reset-line pulse on the real board.
func (b *Board) Reset() error {
	b.clk.Reset()
	b.bus.Reset()
	b.sws.Reset()
	b.latch.Reset()
	b.dac.Reset()
	b.tickAccumFP = 0
	if r, ok := b.cpu.(interface{ Reset() error }); ok {
		if err := r.Reset(); err != nil {
			return fmt.Errorf("processor reset: %w", err)
		}
	}
	return nil
}
