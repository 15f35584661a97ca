// This is a msgd client that sends each line typed on stdin to a msgd
// instance and prints the reply it gets back.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

var (
	showVersion    = flag.Bool("version", false, "print version string")
	msgdTCPAddress = flag.String("msgd-tcp-address", "127.0.0.1:4190", "<addr>:<port> of the msgd instance to connect to")
	connectTimeout = flag.Duration("connect-timeout", 2*time.Second, "timeout for dialing msgd")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("msg_client"))
		return
	}

	addr := *msgdTCPAddress
	if args := flag.Args(); len(args) > 0 {
		if len(args) != 2 {
			log.Fatal("usage: msg_client [flags] [HOST PORT]")
		}
		addr = net.JoinHostPort(args[0], args[1])
	}

	conn, err := net.DialTimeout("tcp", addr, *connectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to msgd (%s) - %s", addr, err)
	}
	defer conn.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	err = talk(conn, os.Stdin, os.Stdout, interactive)
	if err != nil {
		log.Fatalf("%s", err)
	}
}

// talk runs the session loop: one line in, one reply out, until stdin is
// exhausted, a termination command is answered, or the server goes away.
func talk(conn net.Conn, input io.Reader, output io.Writer, interactive bool) error {
	r := bufio.NewReader(input)
	reply := make([]byte, protocol.MaxMessageSize)

	for {
		if interactive {
			fmt.Fprint(output, "> ")
		}

		line, err := readLine(r, protocol.MaxMessageSize)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input - %s", err)
		}

		err = protocol.SendAll(conn, line)
		if err != nil {
			return fmt.Errorf("failed to send to msgd - %s", err)
		}

		n, err := protocol.ReadSome(conn, reply)
		if err != nil {
			if err == io.EOF {
				fmt.Fprintf(output, "(server closed connection)\n")
				return nil
			}
			return fmt.Errorf("failed to read reply - %s", err)
		}

		output.Write(reply[:n])
		if reply[n-1] != '\n' {
			fmt.Fprintf(output, "\n")
		}

		if protocol.IsTerminationCommand(line) {
			return nil
		}
	}
}

// readLine reads up to max bytes from r, stopping after a newline. A
// longer line carries over into the next call.
func readLine(r *bufio.Reader, max int) ([]byte, error) {
	line := make([]byte, 0, max)
	for len(line) < max {
		c, err := r.ReadByte()
		if err != nil {
			if len(line) > 0 {
				// surface what we have, the error comes back around
				return line, nil
			}
			return nil, err
		}
		line = append(line, c)
		if c == '\n' {
			break
		}
	}
	return line, nil
}
