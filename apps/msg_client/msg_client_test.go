package main

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/test"
)

// startEchoingServer accepts connections and answers each message the way
// msgd does.
func startEchoingServer(t *testing.T) net.Addr {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.Nil(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				buf := make([]byte, protocol.MaxMessageSize)
				for {
					n, err := protocol.ReadSome(conn, buf)
					if err != nil {
						return
					}
					if protocol.IsTerminationCommand(buf[:n]) {
						protocol.SendAll(conn, []byte("Bye.\n"))
						return
					}
					protocol.SendAll(conn, []byte("I got your message\n"))
				}
			}(conn)
		}
	}()
	return listener.Addr()
}

func mustDial(t *testing.T, addr net.Addr) net.Conn {
	conn, err := net.DialTimeout("tcp", addr.String(), time.Second)
	test.Nil(t, err)
	return conn
}

func TestTalk(t *testing.T) {
	addr := startEchoingServer(t)
	conn := mustDial(t, addr)
	defer conn.Close()

	input := strings.NewReader("hello\nworld\n")
	var output bytes.Buffer
	err := talk(conn, input, &output, false)
	test.Nil(t, err)
	test.Equal(t, "I got your message\nI got your message\n", output.String())
}

func TestTalkTermination(t *testing.T) {
	addr := startEchoingServer(t)
	conn := mustDial(t, addr)
	defer conn.Close()

	// nothing after the termination command should be sent
	input := strings.NewReader("quit\nnever sent\n")
	var output bytes.Buffer
	err := talk(conn, input, &output, false)
	test.Nil(t, err)
	test.Equal(t, "Bye.\n", output.String())
}

func TestTalkPrompt(t *testing.T) {
	addr := startEchoingServer(t)
	conn := mustDial(t, addr)
	defer conn.Close()

	input := strings.NewReader("hello\n")
	var output bytes.Buffer
	err := talk(conn, input, &output, true)
	test.Nil(t, err)
	test.Equal(t, "> I got your message\n> ", output.String())
}

func TestTalkServerClosed(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	test.Nil(t, err)
	defer listener.Close()

	// read the message, then hang up without replying
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, protocol.MaxMessageSize)
		protocol.ReadSome(conn, buf)
		conn.Close()
	}()

	conn := mustDial(t, listener.Addr())
	defer conn.Close()

	input := strings.NewReader("hello\n")
	var output bytes.Buffer
	err = talk(conn, input, &output, false)
	test.Nil(t, err)
	test.Equal(t, "(server closed connection)\n", output.String())
}

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("hello\nworld"))

	line, err := readLine(r, 255)
	test.Nil(t, err)
	test.Equal(t, []byte("hello\n"), line)

	// an unterminated final line still comes through
	line, err = readLine(r, 255)
	test.Nil(t, err)
	test.Equal(t, []byte("world"), line)

	_, err = readLine(r, 255)
	test.Equal(t, io.EOF, err)
}

func TestReadLineSplitsLongLines(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(strings.Repeat("a", 300) + "\n"))

	line, err := readLine(r, 255)
	test.Nil(t, err)
	test.Equal(t, 255, len(line))

	line, err = readLine(r, 255)
	test.Nil(t, err)
	test.Equal(t, 46, len(line))
	test.Equal(t, byte('\n'), line[45])
}
