package cga

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cgapaint/internal/core"
)

func TestMarshalFreshCanvas(t *testing.T) {
	sizes := [][2]int{{1, 1}, {4, 2}, {7, 3}, {128, 1}, {1, 128}, {128, 128}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		c, err := core.NewCanvas(w, h)
		if err != nil {
			t.Fatalf("NewCanvas(%d, %d) failed: %v", w, h, err)
		}

		out := string(Marshal(c))
		if !strings.HasSuffix(out, "\n") {
			t.Fatalf("%dx%d: output should end with a newline", w, h)
		}

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if len(lines) != h {
			t.Fatalf("%dx%d: got %d lines, expected %d", w, h, len(lines), h)
		}
		expected := strings.Repeat("8", w) + ";"
		for i, line := range lines {
			if line != expected {
				t.Errorf("%dx%d: line %d = %q, expected %q", w, h, i, line, expected)
			}
		}
	}
}

func TestMarshalRowOrder(t *testing.T) {
	c, _ := core.NewCanvas(3, 2)
	c.Set(0, 0, core.ColorBlack)
	c.Set(2, 0, core.ColorRed)
	c.Set(1, 1, core.ColorCyan)

	expected := "182;\n878;\n"
	if got := string(Marshal(c)); got != expected {
		t.Errorf("Marshal() = %q, expected %q", got, expected)
	}
}

func TestEnsureExt(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"art", "art.cga"},
		{"art.cga", "art.cga"},
		{".cga", ".cga"},
		{"a.txt", "a.txt.cga"},
		{"cga", "cga.cga"},
		{"dir/pic", "dir/pic.cga"},
	}

	for _, tc := range tests {
		if got := EnsureExt(tc.in); got != tc.expected {
			t.Errorf("EnsureExt(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestSaveTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.cga")

	if err := os.WriteFile(path, []byte(strings.Repeat("junk\n", 100)), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	c, _ := core.NewCanvas(4, 2)
	if err := Save(path, c); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "8888;\n8888;\n" {
		t.Errorf("saved file = %q", string(data))
	}
}

func TestSaveOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "art.cga")
	c, _ := core.NewCanvas(1, 1)

	err := Save(path, c)
	if !errors.Is(err, ErrFileOpen) {
		t.Errorf("Save() error = %v, expected ErrFileOpen", err)
	}
}

func TestRoundTrip(t *testing.T) {
	c, _ := core.NewCanvas(5, 3)
	for i, col := range core.AllColors() {
		c.Set(i%5, i/5, col)
	}

	decoded, err := Unmarshal(Marshal(c))
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !decoded.Equal(c) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", Marshal(decoded), Marshal(c))
	}
}

func TestDecodeCRLF(t *testing.T) {
	c, err := Unmarshal([]byte("12;\r\n34;\r\n"))
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if c.Width() != 2 || c.Height() != 2 || c.Get(1, 1) != core.ColorBlue {
		t.Errorf("decoded %dx%d, (1,1) = %v", c.Width(), c.Height(), c.Get(1, 1))
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"empty", "", 1},
		{"missing terminator", "888\n", 1},
		{"empty row", ";\n", 1},
		{"ragged rows", "888;\n88;\n", 2},
		{"zero digit", "808;\n", 1},
		{"nine digit", "889;\n", 1},
		{"letters", "8a8;\n", 1},
		{"too wide", strings.Repeat("8", 129) + ";\n", 1},
		{"too tall", strings.Repeat("8;\n", 129), 129},
		{"huge row", strings.Repeat("8", 70000) + ";\n", 1},
		{"huge second row", "8;\n" + strings.Repeat("8", 300) + ";\n", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.data))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("Unmarshal() error = %v, expected ErrMalformed", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if se.Line != tc.line {
				t.Errorf("error line = %d, expected %d", se.Line, tc.line)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.cga")
	if err := os.WriteFile(path, []byte("2888;\n8888;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.Width() != 4 || c.Height() != 2 || c.Get(0, 0) != core.ColorRed {
		t.Errorf("Load() = %dx%d, (0,0) = %v", c.Width(), c.Height(), c.Get(0, 0))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.cga")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
