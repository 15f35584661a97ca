package statsd

import (
	"fmt"
	"io"
	"strings"
)

// Client emits statsd counter and gauge lines to w, which is expected to
// handle any batching or pacing of the underlying writes.
type Client struct {
	w      io.Writer
	prefix string
}

func NewClient(w io.Writer, prefix string) *Client {
	return &Client{
		w:      w,
		prefix: prefix,
	}
}

func (c *Client) Incr(stat string, count int64) error {
	return c.send(stat, count, "c")
}

func (c *Client) Gauge(stat string, value int64) error {
	return c.send(stat, value, "g")
}

func (c *Client) send(stat string, value int64, kind string) error {
	_, err := fmt.Fprintf(c.w, "%s%s:%d|%s\n", c.prefix, stat, value, kind)
	return err
}

// HostKey flattens host:port into a single statsd path segment.
func HostKey(h string) string {
	return strings.NewReplacer(".", "_", ":", "_").Replace(h)
}
