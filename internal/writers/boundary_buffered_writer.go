package writers

import (
	"bufio"
	"io"
)

// BoundaryBufferedWriter buffers writes to w without ever splitting a
// single write across a flush. A write that does not fit in the space
// remaining triggers a flush first.
type BoundaryBufferedWriter struct {
	w *bufio.Writer
}

func NewBoundaryBufferedWriter(w io.Writer, size int) *BoundaryBufferedWriter {
	return &BoundaryBufferedWriter{
		w: bufio.NewWriterSize(w, size),
	}
}

func (b *BoundaryBufferedWriter) Write(p []byte) (int, error) {
	if len(p) > b.w.Available() {
		if err := b.w.Flush(); err != nil {
			return 0, err
		}
	}
	return b.w.Write(p)
}

func (b *BoundaryBufferedWriter) Flush() error {
	return b.w.Flush()
}
