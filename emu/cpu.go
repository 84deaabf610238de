package emu

import (
	"fmt"

	"github.com/jmchacon/6502/cpu"
	"github.com/jmchacon/6502/irq"
	"github.com/jmchacon/6502/memory"
)

// Core is the processor contract the board drives: one Tick per clock
// cycle followed by TickDone once all chips have seen the cycle.
type Core interface {
	Tick() error
	TickDone() error
}

// newCore builds the NMOS 6502 core. The board's processor is the
// 6503 bond-out of the same die, reduced to twelve address lines and
// the /IRQ and /NMI pins; the bus handles the address truncation.
func newCore(ram memory.Ram, irqLine, nmiLine irq.Sender) (Core, error) {
	c, err := cpu.Init(&cpu.ChipDef{
		Cpu: cpu.CPU_NMOS,
		Ram: ram,
		Irq: irqLine,
		Nmi: nmiLine,
	})
	if err != nil {
		return nil, fmt.Errorf("processor init: %w", err)
	}
	return c, nil
}
