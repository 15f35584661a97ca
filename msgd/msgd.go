package msgd

import (
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/http_api"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/quantile"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/statsd"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/util"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

var (
	ackResponse = []byte("I got your message\n")
	byeResponse = []byte("Bye.\n")
)

type MSGD struct {
	// 64bit atomic vars need to be first for proper alignment on 32bit platforms
	clientIDSequence int64
	messageCount     uint64
	messageBytes     uint64
	totalClientCount uint64

	opts *Options

	startTime time.Time

	tcpServer    *tcpServer
	tcpListener  net.Listener
	httpListener net.Listener

	ackLatencyStream *quantile.Quantile

	exitChan  chan int
	waitGroup util.WaitGroupWrapper
}

func New(opts *Options) (*MSGD, error) {
	var err error

	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, opts.LogPrefix, log.Ldate|log.Ltime|log.Lmicroseconds)
	}

	m := &MSGD{
		startTime: time.Now(),
		opts:      opts,
		exitChan:  make(chan int),
	}

	for _, v := range opts.AckLatencyPercentiles {
		if v <= 0 || v > 1 {
			return nil, fmt.Errorf("invalid ack latency percentile: %v", v)
		}
	}
	if len(opts.AckLatencyPercentiles) > 0 {
		m.ackLatencyStream = quantile.New(opts.AckLatencyWindowTime, opts.AckLatencyPercentiles)
	}

	m.tcpServer = &tcpServer{msgd: m}
	m.tcpListener, err = net.Listen("tcp", opts.TCPAddress)
	if err != nil {
		return nil, fmt.Errorf("listen (%s) failed - %s", opts.TCPAddress, err)
	}
	if opts.HTTPAddress != "" {
		m.httpListener, err = net.Listen("tcp", opts.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("listen (%s) failed - %s", opts.HTTPAddress, err)
		}
	}

	if opts.StatsdPrefix != "" {
		var port string
		_, port, err = net.SplitHostPort(opts.TCPAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TCP address (%s) - %s", opts.TCPAddress, err)
		}
		statsdHostKey := statsd.HostKey(net.JoinHostPort(opts.BroadcastAddress, port))
		prefixWithHost := strings.Replace(opts.StatsdPrefix, "%s", statsdHostKey, -1)
		if prefixWithHost[len(prefixWithHost)-1] != '.' {
			prefixWithHost += "."
		}
		opts.StatsdPrefix = prefixWithHost
	}

	m.logf(LOG_INFO, version.String("msgd"))

	return m, nil
}

// Main starts an instance of msgd and returns once it has exited, either
// cleanly via Exit or because a fatal error occurred in one of its servers.
func (m *MSGD) Main() error {
	exitCh := make(chan error)
	var once sync.Once
	exitFunc := func(err error) {
		once.Do(func() {
			if err != nil {
				m.logf(LOG_FATAL, "%s", err)
			}
			exitCh <- err
		})
	}

	m.waitGroup.Wrap(func() {
		exitFunc(protocol.TCPServer(m.tcpListener, m.tcpServer, m.logf))
	})
	if m.httpListener != nil {
		httpServer := newHTTPServer(m)
		m.waitGroup.Wrap(func() {
			exitFunc(http_api.Serve(m.httpListener, httpServer, "HTTP", m.logf))
		})
	}
	if m.opts.StatsdAddress != "" {
		m.waitGroup.Wrap(m.statsdLoop)
	}

	err := <-exitCh
	return err
}

// Exit shuts down all listeners, disconnects all clients, and blocks until
// every handler goroutine has finished.
func (m *MSGD) Exit() {
	if m.tcpListener != nil {
		m.tcpListener.Close()
	}
	if m.tcpServer != nil {
		m.tcpServer.Close()
	}
	if m.httpListener != nil {
		m.httpListener.Close()
	}

	close(m.exitChan)
	m.waitGroup.Wait()

	m.logf(LOG_INFO, "exiting")
}

func (m *MSGD) RealTCPAddr() net.Addr {
	if m.tcpListener == nil {
		return &net.TCPAddr{}
	}
	return m.tcpListener.Addr()
}

func (m *MSGD) RealHTTPAddr() net.Addr {
	if m.httpListener == nil {
		return &net.TCPAddr{}
	}
	return m.httpListener.Addr()
}
