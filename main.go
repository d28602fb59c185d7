// Package main implements the main entry point for the CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/faiface/mainthread"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

const name = "retrochip8"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	// SDL has to be called from the main thread
	mainthread.Run(run)
}

func run() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	config.PrintBanner(logger, opts, version, commit, date)

	if opts.Headless {
		err = runHeadless(ctx, logger, opts)
	} else {
		err = runWindow(ctx, logger, opts)
	}

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("Operation cancelled")
	case errors.Is(err, window.ErrNoFileSelected):
		logger.Info("No ROM file selected")
	default:
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

// loadMachine creates a machine and loads the ROM file into it.
func loadMachine(logger *log.Logger, opts options.Program) (*machine.Machine, error) {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}
	logger.Info("ROM loaded",
		log.String("name", rom.Name),
		log.Int("size", len(rom.Data)),
		log.Hex("crc32", rom.Checksum))

	m := machine.New(logger, config.MachineOptions(opts))
	if err := m.Load(rom.Data); err != nil {
		return nil, err
	}
	return m, nil
}

// runHeadless runs the ROM without a window and prints the screen on exit.
func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program) error {
	events, err := headless.ParseKeyEvents(opts.Keys)
	if err != nil {
		return fmt.Errorf("parsing key events: %w", err)
	}

	m, err := loadMachine(logger, opts)
	if err != nil {
		return err
	}

	if opts.Cycles > 0 {
		runErr := m.RunCycles(opts.Cycles)
		if err := headless.WriteScreen(os.Stdout, m.Screen()); err != nil {
			return err
		}
		return runErr
	}

	frontend := headless.New(events...)
	runErr := m.Run(ctx, frontend)
	logger.Debug("Headless run finished", log.Int("frames", frontend.Frames()))
	if err := frontend.WriteScreen(os.Stdout); err != nil {
		return err
	}
	return runErr
}

// runWindow runs the ROM in an SDL window. Without a ROM file argument the
// user is asked for one using a file dialog.
func runWindow(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if opts.Input == "" {
		path, err := window.SelectROM()
		if err != nil {
			return err
		}
		opts.Input = path
	}

	m, err := loadMachine(logger, opts)
	if err != nil {
		window.ShowError(name, err)
		return err
	}

	w, err := window.New(fmt.Sprintf("%s - %s", name, filepath.Base(opts.Input)), opts.Scale)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer w.Close()

	if err := m.Run(ctx, w); err != nil {
		if !errors.Is(err, context.Canceled) {
			window.ShowError(name, err)
		}
		return err
	}
	return nil
}
