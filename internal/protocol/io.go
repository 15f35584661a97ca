package protocol

import (
	"io"
)

// MaxMessageSize bounds a single message read. A peer that sends more in
// one write sees the excess surface as additional messages.
const MaxMessageSize = 255

// SendAll writes the whole of data to w, looping over partial writes. A
// write that makes no progress without an error ends the loop and still
// counts as sent. net.Conn writes already loop internally so this is a
// single pass in practice.
func SendAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		data = data[n:]
	}
	return nil
}

// ReadSome reads one chunk of up to len(p) bytes from r. It retries empty
// (0, nil) reads until data or an error arrives and never reassembles
// across reads; whatever one read returns is the caller's message. An
// orderly peer shutdown surfaces as (0, io.EOF).
func ReadSome(r io.Reader, p []byte) (int, error) {
	for {
		n, err := r.Read(p)
		if n > 0 {
			// data with a trailing error still counts, the error
			// resurfaces on the next read
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
