package window

import (
	"errors"
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/sqweek/dialog"
)

// ErrNoFileSelected is returned when the file dialog was cancelled.
var ErrNoFileSelected = errors.New("no ROM file selected")

// SelectROM asks the user for a ROM file using a native file dialog.
func SelectROM() (string, error) {
	var (
		path string
		err  error
	)
	mainthread.Call(func() {
		path, err = dialog.File().
			Filter("CHIP-8 ROM", "ch8", "c8").
			Title("Open CHIP-8 ROM").
			Load()
	})

	switch {
	case errors.Is(err, dialog.ErrCancelled):
		return "", ErrNoFileSelected
	case err != nil:
		return "", fmt.Errorf("showing file dialog: %w", err)
	default:
		return path, nil
	}
}

// ShowError displays the error in a native message box.
func ShowError(title string, err error) {
	mainthread.Call(func() {
		dialog.Message("%s", err.Error()).Title(title).Error()
	})
}
