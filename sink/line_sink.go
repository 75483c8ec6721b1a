// Package sink provides LineSink implementations for the scenario drivers:
// an in-memory buffer for tests, a plain writer, and a colored console sink.
package sink

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// BufferSink collects lines in memory. Test double of choice.
type BufferSink struct {
	mu    sync.Mutex
	lines []string
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) WriteLine(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns a copy of everything written so far.
func (b *BufferSink) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// WriterSink writes each line followed by a newline to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// ConsoleSink renders scenario output in green on the terminal.
// Colours can be disabled from config.
type ConsoleSink struct {
	mu      sync.Mutex
	w       io.Writer
	colours bool
}

func NewConsoleSink(w io.Writer, colours bool) *ConsoleSink {
	return &ConsoleSink{w: w, colours: colours}
}

func (s *ConsoleSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colours {
		line = color.New(color.FgGreen).Render(line)
	}
	_, err := fmt.Fprintln(s.w, line)
	return err
}
