// Package cli provides the interactive command-line runner for the
// board: keyboard input mapped to the cabinet lines, live audio out,
// and optional WAV capture.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"

	"github.com/user-none/ema490/emu"
)

// Runner wraps a board for interactive mode. The audio device pulls
// samples from its own goroutine while the main goroutine feeds key
// presses in; the mutex keeps the two off the board at the same time.
type Runner struct {
	board  *emu.Board
	logger *log.Logger
	rec    *Recorder

	mu      sync.Mutex
	attract bool
}

// NewRunner creates a new Runner around the given board. rec may be
// nil to skip WAV capture.
func NewRunner(board *emu.Board, logger *log.Logger, rec *Recorder) *Runner {
	return &Runner{
		board:  board,
		logger: logger,
		rec:    rec,
	}
}

// fill renders samples for the audio device and mirrors them to the
// recorder.
func (r *Runner) fill(buf []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.board.RunSamples(buf); err != nil {
		return err
	}
	if r.rec != nil {
		if err := r.rec.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Run starts playback and processes keyboard input until the context
// is cancelled or the user quits.
func (r *Runner) Run(ctx context.Context) error {
	player, err := NewPlayer(r.board.Timing().DacClockHz, r.fill)
	if err != nil {
		return err
	}
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw terminal: %w", err)
	}
	defer term.Restore(fd, oldState)

	printHelp()
	player.Start()

	keys := make(chan byte)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				close(keys)
				return
			}
			keys <- buf[0]
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			if quit := r.handleKey(key); quit {
				return nil
			}
		}
	}
}

// pulseTicks is how long a key press holds the select lines, about
// 10ms of reference clock. Cabinets strobe commands on the same order.
func (r *Runner) pulseTicks() int {
	return r.board.Timing().RefClockHz / 100
}

// handleKey maps one key press onto the cabinet lines. Returns true on
// quit.
func (r *Runner) handleKey(key byte) bool {
	var code uint8
	switch {
	case key >= '1' && key <= '9':
		code = key - '0'
	case key >= 'a' && key <= 'f':
		code = key - 'a' + 10
	case key == 't':
		r.mu.Lock()
		r.board.PulseTest(r.pulseTicks())
		r.mu.Unlock()
		fmt.Print("test\r\n")
		return false
	case key == 'm':
		r.mu.Lock()
		r.toggleAttract()
		r.mu.Unlock()
		return false
	case key == 'r':
		r.mu.Lock()
		err := r.board.Reset()
		r.mu.Unlock()
		if err != nil {
			r.logger.Error("Reset failed", log.Err(err))
			return true
		}
		fmt.Print("reset\r\n")
		return false
	case key == 'h' || key == '?':
		printHelp()
		return false
	case key == 'q' || key == 0x03: // Ctrl-C in raw mode
		return true
	default:
		return false
	}

	r.mu.Lock()
	r.board.PulseSound(code, r.pulseTicks())
	r.mu.Unlock()
	fmt.Printf("sound %d\r\n", code)
	return false
}

// toggleAttract flips the attract-mode line. Callers hold the board
// lock.
func (r *Runner) toggleAttract() {
	r.attract = !r.attract
	r.board.SetAttract(r.attract)
	if r.attract {
		fmt.Print("attract on\r\n")
	} else {
		fmt.Print("attract off\r\n")
	}
}

func printHelp() {
	fmt.Print("keys: 1-9, a-f = sound codes 1-15, t = test, m = attract, r = reset, q = quit\r\n")
}
