package msgd

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/http_api"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

type httpServer struct {
	msgd   *MSGD
	router http.Handler
}

func newHTTPServer(m *MSGD) *httpServer {
	log := http_api.Log(m.logf)

	router := httprouter.New()
	router.HandleMethodNotAllowed = true
	router.PanicHandler = http_api.LogPanicHandler(m.logf)
	router.NotFound = http_api.LogNotFoundHandler(m.logf)
	router.MethodNotAllowed = http_api.LogMethodNotAllowedHandler(m.logf)
	s := &httpServer{
		msgd:   m,
		router: router,
	}

	router.Handle("GET", "/ping", http_api.Decorate(s.pingHandler, log, http_api.PlainText))
	router.Handle("GET", "/info", http_api.Decorate(s.doInfo, log, http_api.V1))
	router.Handle("GET", "/stats", http_api.Decorate(s.doStats, log, http_api.V1))

	return s
}

func (s *httpServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *httpServer) pingHandler(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	return "OK", nil
}

func (s *httpServer) doInfo(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, http_api.Err{Code: 500, Text: err.Error()}
	}

	return struct {
		Version          string `json:"version"`
		BroadcastAddress string `json:"broadcast_address"`
		Hostname         string `json:"hostname"`
		TCPPort          int    `json:"tcp_port"`
		HTTPPort         int    `json:"http_port"`
		StartTime        int64  `json:"start_time"`
	}{
		Version:          version.Binary,
		BroadcastAddress: s.msgd.opts.BroadcastAddress,
		Hostname:         hostname,
		TCPPort:          s.msgd.RealTCPAddr().(*net.TCPAddr).Port,
		HTTPPort:         s.msgd.RealHTTPAddr().(*net.TCPAddr).Port,
		StartTime:        s.msgd.startTime.Unix(),
	}, nil
}

func (s *httpServer) doStats(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (interface{}, error) {
	reqParams, err := http_api.NewReqParams(req)
	if err != nil {
		s.msgd.logf(LOG_ERROR, "failed to parse request params - %s", err)
		return nil, http_api.Err{Code: 400, Text: "INVALID_REQUEST"}
	}

	formatString, _ := reqParams.Get("format")
	includeClientsParam, _ := reqParams.Get("include_clients")
	jsonFormat := formatString == "json"
	includeClients := true
	if includeClientsParam == "false" {
		includeClients = false
	}

	stats := s.msgd.GetStats(includeClients)

	if !jsonFormat {
		return s.printStats(stats), nil
	}

	return stats, nil
}

func (s *httpServer) printStats(stats Stats) []byte {
	var buf bytes.Buffer
	w := &buf
	now := time.Now()

	fmt.Fprintf(w, "%s\n", version.String("msgd"))
	fmt.Fprintf(w, "start_time %v\n", s.msgd.startTime.Format(time.RFC3339))
	fmt.Fprintf(w, "uptime %s\n", now.Sub(s.msgd.startTime))

	fmt.Fprintf(w, "\nmessages: %d (%d bytes)\n", stats.MessageCount, stats.MessageBytes)
	fmt.Fprintf(w, "clients: %d connected, %d total\n", stats.ClientCount, stats.TotalClientCount)
	if len(stats.AckLatency.Percentiles) > 0 {
		fmt.Fprintf(w, "ack_latency: %s\n", stats.AckLatency)
	}

	for _, client := range stats.Clients {
		fmt.Fprintf(w, "   [%d %-21s] msgs: %-8d bytes: %-8d connected: %s\n",
			client.ID,
			client.RemoteAddress,
			client.MessageCount,
			client.MessageBytes,
			now.Sub(time.Unix(client.ConnectTime, 0)).Round(time.Second),
		)
	}

	return buf.Bytes()
}
