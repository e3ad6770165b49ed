package log

import (
	"errors"
	"io"
)

// MultiWriter fans every write out to all of its writers. A failing writer
// does not stop the others.
type MultiWriter struct {
	writers []io.Writer
}

func (m *MultiWriter) Write(p []byte) (n int, err error) {
	var errs []error
	for _, w := range m.writers {
		if _, e := w.Write(p); e != nil {
			errs = append(errs, e)
		}
	}
	return len(p), errors.Join(errs...)
}

func (m *MultiWriter) Add(writer io.Writer) *MultiWriter {
	m.writers = append(m.writers, writer)
	return m
}

func NewMultiWriter() *MultiWriter {
	return &MultiWriter{writers: make([]io.Writer, 0, 2)}
}
