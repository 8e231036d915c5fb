package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/cgapaint/internal/cga"
	"github.com/vovakirdan/cgapaint/internal/core"
)

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.cga")

	c, err := Create(path, 3, 1)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.Width() != 3 || c.Height() != 1 {
		t.Errorf("Create() canvas = %dx%d", c.Width(), c.Height())
	}
	if got := readFile(t, path); got != "888;\n" {
		t.Errorf("file = %q, expected %q", got, "888;\n")
	}
}

func TestCreateInvalidSizeWritesNothing(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 4},
		{"too wide", 129, 4},
		{"negative height", 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".cga")
			_, err := Create(path, tt.w, tt.h)
			if !errors.Is(err, core.ErrInvalidDimensions) {
				t.Errorf("Create(%d, %d) error = %v, expected ErrInvalidDimensions", tt.w, tt.h, err)
			}
			if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("no file should be written for %dx%d", tt.w, tt.h)
			}
		})
	}
}

func TestOpenOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.cga")

	c, created, err := OpenOrCreate(path, 2, 2)
	if err != nil {
		t.Fatalf("OpenOrCreate() failed: %v", err)
	}
	if !created {
		t.Error("first call should create the file")
	}

	c.Set(1, 1, core.ColorCyan)
	if err := cga.Save(path, c); err != nil {
		t.Fatal(err)
	}

	// Existing file wins over the requested size
	c2, created, err := OpenOrCreate(path, 8, 8)
	if err != nil {
		t.Fatalf("OpenOrCreate() failed: %v", err)
	}
	if created {
		t.Error("second call should open the existing file")
	}
	if !c2.Equal(c) {
		t.Error("reopened canvas differs from the saved one")
	}
}

func TestOpenOrCreateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cga")
	if err := os.WriteFile(path, []byte("12x;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := OpenOrCreate(path, 2, 2)
	if !errors.Is(err, cga.ErrMalformed) {
		t.Errorf("OpenOrCreate() error = %v, expected ErrMalformed", err)
	}
	// The corrupt file is left alone
	if got := readFile(t, path); got != "12x;\n" {
		t.Errorf("malformed file was overwritten: %q", got)
	}
}
