// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if len(args) > 0 {
		opts.Input = args[0]
	}

	if err := validateOptions(opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] [ROM file]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	if len(args) > 1 {
		if args[1] != "" && args[1][0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", args[1]),
			}
		}
		return &UsageError{msg: "only a single ROM file can be run"}
	}
	return nil
}

// validateOptions checks the option values and their combinations.
func validateOptions(opts options.Program) error {
	switch {
	case opts.Speed <= 0:
		return fmt.Errorf("invalid speed %d, must be positive", opts.Speed)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	case opts.Cycles < 0:
		return fmt.Errorf("invalid cycle count %d", opts.Cycles)
	case opts.Headless && opts.Input == "":
		return errors.New("headless mode requires a ROM file")
	case opts.Cycles > 0 && !opts.Headless:
		return errors.New("a cycle count can only be used in headless mode")
	case opts.Keys != "" && !opts.Headless:
		return errors.New("key events can only be used in headless mode")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window and print the screen on exit")
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window pixels per CHIP-8 pixel")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of 60 Hz frames, 0 runs until the window is closed")
	flags.IntVar(&opts.Cycles, "cycles", 0, "execute the given number of instructions as fast as possible (headless only)")
	flags.StringVar(&opts.Keys, "keys", "", "key events as frame+key or frame-key list, for example 30+5,45-5 (headless only)")
}
