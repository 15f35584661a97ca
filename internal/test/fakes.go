package test

import (
	"io"
	"net"
	"time"
)

// FakeNetConn is a scriptable net.Conn. Tests override the individual
// func fields to fake one side of a connection.
type FakeNetConn struct {
	ReadFunc             func([]byte) (int, error)
	WriteFunc            func([]byte) (int, error)
	CloseFunc            func() error
	LocalAddrFunc        func() net.Addr
	RemoteAddrFunc       func() net.Addr
	SetDeadlineFunc      func(time.Time) error
	SetReadDeadlineFunc  func(time.Time) error
	SetWriteDeadlineFunc func(time.Time) error
}

// NewFakeNetConn returns a conn whose writes succeed and whose reads
// report EOF, as if the peer hung up immediately.
func NewFakeNetConn() FakeNetConn {
	addr := fakeAddr{}
	return FakeNetConn{
		ReadFunc:             func([]byte) (int, error) { return 0, io.EOF },
		WriteFunc:            func(b []byte) (int, error) { return len(b), nil },
		CloseFunc:            func() error { return nil },
		LocalAddrFunc:        func() net.Addr { return addr },
		RemoteAddrFunc:       func() net.Addr { return addr },
		SetDeadlineFunc:      func(time.Time) error { return nil },
		SetReadDeadlineFunc:  func(time.Time) error { return nil },
		SetWriteDeadlineFunc: func(time.Time) error { return nil },
	}
}

func (f FakeNetConn) Read(b []byte) (int, error)         { return f.ReadFunc(b) }
func (f FakeNetConn) Write(b []byte) (int, error)        { return f.WriteFunc(b) }
func (f FakeNetConn) Close() error                       { return f.CloseFunc() }
func (f FakeNetConn) LocalAddr() net.Addr                { return f.LocalAddrFunc() }
func (f FakeNetConn) RemoteAddr() net.Addr               { return f.RemoteAddrFunc() }
func (f FakeNetConn) SetDeadline(t time.Time) error      { return f.SetDeadlineFunc(t) }
func (f FakeNetConn) SetReadDeadline(t time.Time) error  { return f.SetReadDeadlineFunc(t) }
func (f FakeNetConn) SetWriteDeadline(t time.Time) error { return f.SetWriteDeadlineFunc(t) }

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "1.2.3.4:4190" }
