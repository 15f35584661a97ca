package msgd

import (
	"net"
	"sync"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
)

type tcpServer struct {
	msgd  *MSGD
	conns sync.Map
}

func (p *tcpServer) Handle(conn net.Conn) {
	p.msgd.logf(LOG_INFO, "TCP: new client(%s)", conn.RemoteAddr())

	// there is no handshake, clients speak raw text from the first byte
	var prot protocol.Protocol = &protocolText{msgd: p.msgd}

	client := prot.NewClient(conn)
	p.conns.Store(conn.RemoteAddr(), client)

	err := prot.IOLoop(client)
	if err != nil {
		p.msgd.logf(LOG_ERROR, "client(%s) - %s", conn.RemoteAddr(), err)
	}

	p.conns.Delete(conn.RemoteAddr())
	client.Close()
}

func (p *tcpServer) Close() {
	p.conns.Range(func(k, v interface{}) bool {
		v.(protocol.Client).Close()
		return true
	})
}
