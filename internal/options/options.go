// Package options contains the program options.
package options

// Default values of the behavior options.
const (
	DefaultSpeed = 500 // instructions per second
	DefaultScale = 10  // window pixels per display pixel
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run, a file dialog is shown if empty
}

// Flags contains behavior options.
type Flags struct {
	Debug    bool // enable debug logging
	Quiet    bool // only log errors
	Trace    bool // log every executed instruction, implies Debug
	Headless bool // run without a window

	Speed  int // instructions per second
	Scale  int // window pixels per display pixel
	Frames int // stop after this many 60 Hz frames, 0 runs until quit
	Cycles int // execute this many instructions without timing, headless only

	Keys string // scripted key events, headless only
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

// New returns program options initialized with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Speed: DefaultSpeed,
			Scale: DefaultScale,
		},
	}
}
