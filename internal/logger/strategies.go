package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// WriterStrategy creates a writer for a specific log format
type WriterStrategy interface {
	CreateWriter(out io.Writer) io.Writer
}

// JSONWriterStrategy writes raw zerolog JSON lines
type JSONWriterStrategy struct{}

// CreateWriter returns the output unchanged; zerolog emits JSON natively
func (s *JSONWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return out
}

// ConsoleWriterStrategy writes human-readable, optionally colored output
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter wraps the output in a zerolog console writer
func (s *ConsoleWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, NoColor: s.NoColor}
}

// TextWriterStrategy writes plain uncolored console output
type TextWriterStrategy struct{}

// CreateWriter wraps the output in an uncolored console writer
func (s *TextWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, NoColor: true}
}
