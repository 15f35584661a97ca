package writers

import (
	"bytes"
	"testing"
	"time"
)

func TestSpreadWriter(t *testing.T) {
	var buf bytes.Buffer
	exitCh := make(chan int)
	w := NewSpreadWriter(&buf, 50*time.Millisecond, exitCh)

	for _, line := range []string{"one\n", "two\n", "three\n"} {
		n, err := w.Write([]byte(line))
		if err != nil {
			t.Fatal(err)
		}
		if n != len(line) {
			t.Fatalf("short write %d", n)
		}
	}

	// nothing reaches the underlying writer until flush
	if buf.Len() != 0 {
		t.Fatalf("expected empty buffer, got %q", buf.String())
	}

	w.Flush()
	if buf.String() != "one\ntwo\nthree\n" {
		t.Fatalf("unexpected flush output %q", buf.String())
	}

	// flush with nothing buffered is a no-op
	buf.Reset()
	w.Flush()
	if buf.Len() != 0 {
		t.Fatalf("expected empty buffer, got %q", buf.String())
	}
}

func TestSpreadWriterExit(t *testing.T) {
	var buf bytes.Buffer
	exitCh := make(chan int)
	close(exitCh)

	w := NewSpreadWriter(&buf, time.Hour, exitCh)
	w.Write([]byte("one\n"))
	w.Write([]byte("two\n"))

	start := time.Now()
	w.Flush()
	if time.Since(start) > time.Second {
		t.Fatal("flush did not honor exit channel")
	}
	if buf.String() != "one\ntwo\n" {
		t.Fatalf("unexpected flush output %q", buf.String())
	}
}
