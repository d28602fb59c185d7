package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/keyboard"
)

var errInvalidKeyEvent = errors.New("invalid key event")

// ParseKeyEvents parses a comma separated list of key events. Every event
// consists of the frame number, '+' for press or '-' for release and the
// hexadecimal key, for example "30+5,45-5".
func ParseKeyEvents(s string) ([]KeyEvent, error) {
	if s == "" {
		return nil, nil
	}

	var events []KeyEvent
	for _, item := range strings.Split(s, ",") {
		event, err := parseKeyEvent(strings.TrimSpace(item))
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func parseKeyEvent(s string) (KeyEvent, error) {
	i := strings.IndexAny(s, "+-")
	if i < 1 || i == len(s)-1 {
		return KeyEvent{}, fmt.Errorf("%w '%s'", errInvalidKeyEvent, s)
	}

	frame, err := strconv.Atoi(s[:i])
	if err != nil || frame < 0 {
		return KeyEvent{}, fmt.Errorf("%w '%s': invalid frame", errInvalidKeyEvent, s)
	}

	key, err := strconv.ParseUint(s[i+1:], 16, 8)
	if err != nil || key >= keyboard.KeyCount {
		return KeyEvent{}, fmt.Errorf("%w '%s': invalid key", errInvalidKeyEvent, s)
	}

	return KeyEvent{
		Frame:   frame,
		Key:     keyboard.Key(key),
		Pressed: s[i] == '+',
	}, nil
}
