package writers

import (
	"bytes"
	"testing"
)

func TestBoundaryBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewBoundaryBufferedWriter(&buf, 16)

	w.Write([]byte("0123456789"))
	if buf.Len() != 0 {
		t.Fatalf("expected buffered write, underlying has %q", buf.String())
	}

	// a write that would not fit flushes what came before, whole
	w.Write([]byte("abcdefghij"))
	if buf.String() != "0123456789" {
		t.Fatalf("expected boundary flush, got %q", buf.String())
	}

	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "0123456789abcdefghij" {
		t.Fatalf("unexpected final output %q", buf.String())
	}
}
