// This is a msgd relay that delivers delimited records from stdin to a
// set of msgd instances, waiting for each acknowledgement.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitly/go-hostpool"
	"github.com/bitly/go-simplejson"
	"github.com/bitly/timer_metrics"
	"github.com/blang/semver"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/app"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/clusterinfo"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/http_api"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

const (
	ModeRoundRobin = iota
	ModeHostPool
)

var (
	showVersion = flag.Bool("version", false, "print version string")

	mode           = flag.String("mode", "round-robin", "the destination selection mode options: round-robin, hostpool")
	delimiter      = flag.String("delimiter", "\n", "character to split input from stdin")
	statusEvery    = flag.Int("status-every", 250, "the # of records between logging status (0 disables)")
	connectTimeout = flag.Duration("connect-timeout", 2*time.Second, "timeout for dialing msgd")

	requireJSONField = flag.String("require-json-field", "", "for JSON records: only relay records that contain this field")
	requireJSONValue = flag.String("require-json-value", "", "for JSON records: only relay records in which the required field has this value")

	msgdTCPAddrs  = app.StringArray{}
	msgdHTTPAddrs = app.StringArray{}
)

func init() {
	flag.Var(&msgdTCPAddrs, "msgd-tcp-address", "destination msgd TCP address (may be given multiple times)")
	flag.Var(&msgdHTTPAddrs, "msgd-http-address", "msgd HTTP address to check reachability and version at startup (may be given multiple times)")
}

type Relay struct {
	counter uint64

	addresses app.StringArray
	mode      int
	hostPool  hostpool.HostPool
	conns     map[string]net.Conn
	reply     []byte

	perAddressStatus map[string]*timer_metrics.TimerMetrics
	timermetrics     *timer_metrics.TimerMetrics
}

// deliver sends one record to addr and waits for the reply. Connections
// are dialed lazily and kept for reuse; any failure discards the
// connection so the next delivery redials.
func (r *Relay) deliver(addr string, body []byte) error {
	conn, ok := r.conns[addr]
	if !ok {
		var err error
		conn, err = net.DialTimeout("tcp", addr, *connectTimeout)
		if err != nil {
			return err
		}
		r.conns[addr] = conn
	}

	err := protocol.SendAll(conn, body)
	if err == nil {
		_, err = protocol.ReadSome(conn, r.reply)
	}
	if err != nil {
		conn.Close()
		delete(r.conns, addr)
		return err
	}
	return nil
}

func (r *Relay) handleRecord(body []byte) error {
	if !shouldPassRecord(body) {
		return nil
	}

	if protocol.IsTerminationCommand(body) {
		// relaying it would end the destination's session
		log.Printf("WARNING: skipping termination command record %q", body)
		return nil
	}

	if len(body) > protocol.MaxMessageSize {
		log.Printf("WARNING: skipping oversized record (%d bytes)", len(body))
		return nil
	}

	startTime := time.Now()

	var addr string
	switch r.mode {
	case ModeRoundRobin:
		addr = r.addresses[r.counter%uint64(len(r.addresses))]
		r.counter++
		err := r.deliver(addr, body)
		if err != nil {
			return err
		}
	case ModeHostPool:
		hostPoolResponse := r.hostPool.Get()
		addr = hostPoolResponse.Host()
		err := r.deliver(addr, body)
		hostPoolResponse.Mark(err)
		if err != nil {
			return err
		}
	}

	r.perAddressStatus[addr].Status(startTime)
	r.timermetrics.Status(startTime)
	return nil
}

func (r *Relay) Close() {
	for _, conn := range r.conns {
		conn.Close()
	}
}

func shouldPassRecord(body []byte) bool {
	if *requireJSONField == "" {
		return true
	}

	js, err := simplejson.NewJson(body)
	if err != nil {
		log.Printf("ERROR: unable to parse JSON record - %s", err)
		return false
	}

	jsVal, ok := js.CheckGet(*requireJSONField)
	if !ok {
		return false
	}

	if *requireJSONValue == "" {
		return true
	}

	v, err := jsVal.String()
	return err == nil && v == *requireJSONValue
}

// readAndRelay reads to the delim from r and hands the record to relay.
func readAndRelay(r *bufio.Reader, delim byte, relay *Relay) error {
	line, readErr := r.ReadBytes(delim)

	if len(line) > 0 {
		// trim the delimiter
		line = line[:len(line)-1]
	}

	if len(line) == 0 {
		return readErr
	}

	err := relay.handleRecord(line)
	if err != nil {
		log.Printf("ERROR: failed to relay record - %s", err)
	}

	return readErr
}

func main() {
	var selectedMode int

	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("to_msgd"))
		return
	}

	if len(msgdTCPAddrs) == 0 {
		log.Fatal("--msgd-tcp-address required")
	}

	if len(*delimiter) != 1 {
		log.Fatal("--delimiter must be a single byte")
	}
	delim := (*delimiter)[0]

	switch *mode {
	case "round-robin":
		selectedMode = ModeRoundRobin
	case "hostpool":
		selectedMode = ModeHostPool
	default:
		log.Fatalf("invalid --mode %q (round-robin or hostpool)", *mode)
	}

	if *requireJSONValue != "" && *requireJSONField == "" {
		log.Fatal("--require-json-value requires --require-json-field")
	}

	// make sure the destinations actually run a compatible msgd
	binVersion := semver.MustParse(version.Binary)
	ci := clusterinfo.New(nil, http_api.NewClient(*connectTimeout, 5*time.Second))
	for _, addr := range msgdHTTPAddrs {
		nodeVersion, err := ci.GetVersion(addr)
		if err != nil {
			log.Fatalf("failed to get version from %s - %s", addr, err)
		}
		log.Printf("msgd %s is v%s", addr, nodeVersion)
		if nodeVersion.Major != binVersion.Major || nodeVersion.Minor != binVersion.Minor {
			log.Printf("WARNING: version mismatch with %s (v%s vs v%s)", addr, nodeVersion, binVersion)
		}
	}

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan bool)

	perAddressStatus := make(map[string]*timer_metrics.TimerMetrics)
	if len(msgdTCPAddrs) == 1 {
		// disable since there is only one address
		perAddressStatus[msgdTCPAddrs[0]] = timer_metrics.NewTimerMetrics(0, "")
	} else {
		for _, a := range msgdTCPAddrs {
			perAddressStatus[a] = timer_metrics.NewTimerMetrics(*statusEvery, fmt.Sprintf("[%s]:", a))
		}
	}

	relay := &Relay{
		addresses:        msgdTCPAddrs,
		mode:             selectedMode,
		hostPool:         hostpool.New(msgdTCPAddrs),
		conns:            make(map[string]net.Conn),
		reply:            make([]byte, protocol.MaxMessageSize),
		perAddressStatus: perAddressStatus,
		timermetrics:     timer_metrics.NewTimerMetrics(*statusEvery, "[aggregate]:"),
	}

	r := bufio.NewReader(os.Stdin)
	go func() {
		for {
			err := readAndRelay(r, delim, relay)
			if err != nil {
				if err != io.EOF {
					log.Fatal(err)
				}
				close(stopChan)
				break
			}
		}
	}()

	select {
	case <-termChan:
	case <-stopChan:
	}

	relay.Close()
}
