package msgd

import (
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
)

// protocolText implements the line oriented text protocol. Clients send
// arbitrary text and receive a fixed acknowledgement per message, or a
// farewell when the message is a termination command.
type protocolText struct {
	msgd *MSGD
}

func (p *protocolText) NewClient(conn net.Conn) protocol.Client {
	id := atomic.AddInt64(&p.msgd.clientIDSequence, 1)
	atomic.AddUint64(&p.msgd.totalClientCount, 1)
	return newClientV1(id, conn)
}

func (p *protocolText) IOLoop(c protocol.Client) error {
	client := c.(*clientV1)

	buf := make([]byte, protocol.MaxMessageSize)
	for {
		n, err := protocol.ReadSome(client, buf)
		if err != nil {
			if err == io.EOF {
				p.msgd.logf(LOG_INFO, "CLIENT(%s): disconnected", client)
				return nil
			}
			return fmt.Errorf("failed to read from client - %s", err)
		}

		msg := buf[:n]
		start := time.Now()

		atomic.AddUint64(&client.MessageCount, 1)
		atomic.AddUint64(&client.MessageBytes, uint64(n))
		atomic.AddUint64(&p.msgd.messageCount, 1)
		atomic.AddUint64(&p.msgd.messageBytes, uint64(n))

		p.msgd.logf(LOG_DEBUG, "CLIENT(%s): received %q", client, msg)

		if protocol.IsTerminationCommand(msg) {
			err = protocol.SendAll(client, byeResponse)
			if err != nil {
				// the client asked to go away, failing to say goodbye
				// does not change the outcome
				p.msgd.logf(LOG_ERROR, "CLIENT(%s): failed to send farewell - %s", client, err)
			}
			p.msgd.logf(LOG_INFO, "CLIENT(%s): disconnected by command", client)
			return nil
		}

		err = protocol.SendAll(client, ackResponse)
		if err != nil {
			return fmt.Errorf("failed to send acknowledgement - %s", err)
		}

		if p.msgd.ackLatencyStream != nil {
			p.msgd.ackLatencyStream.Insert(start.UnixNano())
		}
	}
}
