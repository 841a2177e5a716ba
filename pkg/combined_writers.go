package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter mirrors every write to all of its writers, e.g. the log
// file and stdout. A failing writer does not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns the bytes written by the writers that succeeded, and all
// errors of those that did not.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		n += written
		err = multierr.Append(err, werr)
	}
	return n, err
}
