package protocol

import (
	"net"
)

// Client is the server side state for an accepted connection.
type Client interface {
	Close() error
}

// Protocol describes the basic behavior of any protocol in the system
type Protocol interface {
	NewClient(net.Conn) Client
	IOLoop(Client) error
}
