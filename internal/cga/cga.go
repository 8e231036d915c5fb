// Package cga reads and writes the .cga pixel format: one text line per canvas
// row, each cell written as the ASCII digit of its palette index, every row
// terminated by ';' and a newline. There is no header or trailer.
package cga

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/cgapaint/internal/core"
)

// Ext is the file extension of the pixel format.
const Ext = ".cga"

// RowTerminator ends every encoded row.
const RowTerminator = ';'

var (
	// ErrFileOpen is returned when the save target cannot be opened for writing.
	ErrFileOpen = errors.New("cannot open file for writing")

	// ErrMalformed is returned when decoded data is not valid .cga content.
	ErrMalformed = errors.New("malformed cga data")
)

// maxLineLen fits the widest row, its terminator, "\r\n" and some slack.
const maxLineLen = 2 * core.MaxCanvasSize

// SyntaxError describes where decoding failed.
type SyntaxError struct {
	Line int // 1-based line number
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cga: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformed.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

// EnsureExt appends Ext to name unless it already ends with it.
func EnsureExt(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

// Encode writes c to w in .cga format, rows top to bottom, columns left to right.
func Encode(w io.Writer, c *core.Canvas) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, c.Width()+2)

	for y := 0; y < c.Height(); y++ {
		line = line[:0]
		for _, cell := range c.Row(y) {
			line = append(line, cell.Char())
		}
		line = append(line, RowTerminator, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("cga: write row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cga: flush: %w", err)
	}
	return nil
}

// Marshal returns the .cga encoding of c.
func Marshal(c *core.Canvas) []byte {
	var buf bytes.Buffer
	buf.Grow((c.Width() + 2) * c.Height())
	// Writes to a bytes.Buffer cannot fail.
	_ = Encode(&buf, c)
	return buf.Bytes()
}

// Save replaces the file at path with the encoding of c.
// Any existing content is truncated; the write is not atomic.
func Save(path string, c *core.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cga: %w: %s: %w", ErrFileOpen, path, err)
	}

	if err := Encode(f, c); err != nil {
		f.Close()
		return fmt.Errorf("cga: save %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("cga: close %s: %w", path, err)
	}
	return nil
}

// Decode reads a canvas from r. Every line must be the same number of
// palette digits followed by ';'. A '\r' before the newline is accepted.
func Decode(r io.Reader) (*core.Canvas, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineLen), maxLineLen)
	var rows [][]core.ColorIndex
	width := -1
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if !strings.HasSuffix(line, string(RowTerminator)) {
			return nil, &SyntaxError{Line: lineNo, Msg: "row is not terminated by ';'"}
		}
		body := line[:len(line)-1]

		if width < 0 {
			width = len(body)
			if width == 0 || width > core.MaxCanvasSize {
				return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("row width %d outside 1..%d", width, core.MaxCanvasSize)}
			}
		} else if len(body) != width {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("row width %d, expected %d", len(body), width)}
		}

		if len(rows) == core.MaxCanvasSize {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("more than %d rows", core.MaxCanvasSize)}
		}

		row := make([]core.ColorIndex, width)
		for x := 0; x < width; x++ {
			idx, ok := core.ParseColorChar(body[x])
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("invalid colour %q at column %d", body[x], x+1)}
			}
			row[x] = idx
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &SyntaxError{Line: lineNo + 1, Msg: fmt.Sprintf("row longer than %d cells", core.MaxCanvasSize)}
		}
		return nil, fmt.Errorf("cga: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, &SyntaxError{Line: 1, Msg: "no rows"}
	}

	c, err := core.NewCanvas(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("cga: %w", err)
	}
	for y, row := range rows {
		for x, idx := range row {
			c.Set(x, y, idx)
		}
	}
	return c, nil
}

// Unmarshal decodes a canvas from data.
func Unmarshal(data []byte) (*core.Canvas, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the file at path.
func Load(path string) (*core.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cga: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
