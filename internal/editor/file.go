package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
)

// Create makes a fresh width x height canvas and writes it to path.
// The initial save is the only one whose failure is returned to the caller.
func Create(path string, width, height int) (*core.Canvas, error) {
	c, err := core.NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	if err := cga.Save(path, c); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenOrCreate loads path, or creates it at width x height when it does not exist.
// created reports which of the two happened.
func OpenOrCreate(path string, width, height int) (c *core.Canvas, created bool, err error) {
	c, err = cga.Load(path)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, false, err
	}

	c, err = Create(path, width, height)
	if err != nil {
		return nil, false, fmt.Errorf("editor: create %s: %w", path, err)
	}
	return c, true, nil
}
