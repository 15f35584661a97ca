package msgd

import (
	"net"
	"sync/atomic"
	"time"
)

type clientV1 struct {
	// 64bit atomic vars need to be first for proper alignment on 32bit platforms
	MessageCount uint64
	MessageBytes uint64

	net.Conn

	ID          int64
	ConnectTime time.Time
}

func newClientV1(id int64, conn net.Conn) *clientV1 {
	return &clientV1{
		Conn:        conn,
		ID:          id,
		ConnectTime: time.Now(),
	}
}

func (c *clientV1) String() string {
	return c.RemoteAddr().String()
}

func (c *clientV1) Stats() ClientStats {
	return ClientStats{
		ID:            c.ID,
		RemoteAddress: c.RemoteAddr().String(),
		ConnectTime:   c.ConnectTime.Unix(),
		MessageCount:  atomic.LoadUint64(&c.MessageCount),
		MessageBytes:  atomic.LoadUint64(&c.MessageBytes),
	}
}
