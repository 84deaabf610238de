package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/user-none/ema490/cli"
	"github.com/user-none/ema490/emu"
	"github.com/user-none/ema490/romloader"
)

func main() {
	romPath := flag.String("rom", "", "path to sound driver ROM (raw or archive)")
	wavPath := flag.String("wav", "", "record output to WAV file")
	soundCode := flag.Int("sound", 0, "render a single sound code offline (1-15, requires -wav)")
	seconds := flag.Float64("seconds", 3.0, "length of offline render")
	debug := flag.Bool("debug", false, "enable debug logging")
	quiet := flag.Bool("quiet", false, "errors only")
	flag.Parse()

	logger := createLogger(*debug, *quiet)

	if *romPath == "" {
		fmt.Println("Usage: ema490 -rom <romfile> [-wav out.wav] [-sound N -seconds S]")
		os.Exit(1)
	}

	if err := run(app.Context(), logger, *romPath, *wavPath, *soundCode, *seconds); err != nil {
		logger.Fatal(err.Error())
	}
}

// createLogger creates a logger with appropriate settings
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func run(ctx context.Context, logger *log.Logger, romPath, wavPath string, soundCode int, seconds float64) error {
	romData, romName, err := romloader.LoadROM(romPath)
	if err != nil {
		return fmt.Errorf("failed to load ROM: %w", err)
	}

	if info, ok := emu.LookupROM(romData); ok {
		logger.Info("Loaded sound ROM",
			log.String("file", romName),
			log.String("game", info.Game))
	} else {
		logger.Info("Loaded sound ROM (not in database)",
			log.String("file", romName))
	}

	board, err := emu.NewBoard(romData, emu.DefaultTiming)
	if err != nil {
		return err
	}

	var rec *cli.Recorder
	if wavPath != "" {
		rec, err = cli.NewRecorder(wavPath, emu.DefaultTiming.DacClockHz)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				logger.Error("WAV finalize failed", log.Err(cerr))
			}
		}()
	}

	if soundCode != 0 {
		if soundCode < 1 || soundCode > 15 {
			return fmt.Errorf("invalid sound code %d (use 1-15)", soundCode)
		}
		if rec == nil {
			return errors.New("-sound requires -wav")
		}
		return renderOffline(board, rec, uint8(soundCode), seconds)
	}

	runner := cli.NewRunner(board, logger, rec)
	return runner.Run(ctx)
}

// renderOffline lets the driver boot, strobes one sound code and
// renders the result to the recorder without opening an audio device.
func renderOffline(board *emu.Board, rec *cli.Recorder, code uint8, seconds float64) error {
	timing := board.Timing()
	buf := make([]float32, 512)

	render := func(samples int) error {
		for samples > 0 {
			n := len(buf)
			if samples < n {
				n = samples
			}
			if err := board.RunSamples(buf[:n]); err != nil {
				return err
			}
			if err := rec.Write(buf[:n]); err != nil {
				return err
			}
			samples -= n
		}
		return nil
	}

	// quarter second of boot before the request
	if err := render(timing.DacClockHz / 4); err != nil {
		return err
	}
	board.PulseSound(code, timing.RefClockHz/100)
	return render(int(float64(timing.DacClockHz) * seconds))
}
