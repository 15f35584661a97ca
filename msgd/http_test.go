package msgd

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/test"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

func TestHTTPping(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	_, httpAddr, msgd := mustStartMSGD(opts)
	defer msgd.Exit()

	url := fmt.Sprintf("http://%s/ping", httpAddr)
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	test.Equal(t, 200, resp.StatusCode)
	test.Equal(t, []byte("OK"), body)
}

func TestHTTPinfo(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	tcpAddr, httpAddr, msgd := mustStartMSGD(opts)
	defer msgd.Exit()

	url := fmt.Sprintf("http://%s/info", httpAddr)
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	test.Equal(t, 200, resp.StatusCode)

	info := struct {
		Version          string `json:"version"`
		BroadcastAddress string `json:"broadcast_address"`
		Hostname         string `json:"hostname"`
		TCPPort          int    `json:"tcp_port"`
		HTTPPort         int    `json:"http_port"`
		StartTime        int64  `json:"start_time"`
	}{}
	err = json.Unmarshal(body, &info)
	test.Nil(t, err)
	test.Equal(t, version.Binary, info.Version)
	test.Equal(t, opts.BroadcastAddress, info.BroadcastAddress)
	test.Equal(t, tcpAddr.(*net.TCPAddr).Port, info.TCPPort)
	test.Equal(t, httpAddr.(*net.TCPAddr).Port, info.HTTPPort)
}

func TestHTTPstats(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	tcpAddr, httpAddr, msgd := mustStartMSGD(opts)
	defer msgd.Exit()

	conn := mustConnect(t, tcpAddr)
	defer conn.Close()
	_, err := conn.Write([]byte("hello"))
	test.Nil(t, err)
	test.Equal(t, ackResponse, readOne(t, conn))

	url := fmt.Sprintf("http://%s/stats?format=json", httpAddr)
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	test.Equal(t, 200, resp.StatusCode)

	stats := Stats{}
	err = json.Unmarshal(body, &stats)
	test.Nil(t, err)
	test.Equal(t, version.Binary, stats.Version)
	test.Equal(t, 1, stats.ClientCount)
	test.Equal(t, uint64(1), stats.MessageCount)
	test.Equal(t, uint64(5), stats.MessageBytes)
	test.Equal(t, 1, len(stats.Clients))
}

func TestHTTPstatsText(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	tcpAddr, httpAddr, msgd := mustStartMSGD(opts)
	defer msgd.Exit()

	conn := mustConnect(t, tcpAddr)
	defer conn.Close()
	_, err := conn.Write([]byte("hello"))
	test.Nil(t, err)
	test.Equal(t, ackResponse, readOne(t, conn))

	url := fmt.Sprintf("http://%s/stats", httpAddr)
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	test.Equal(t, 200, resp.StatusCode)
	test.Equal(t, "msgd; version=1.0", resp.Header.Get("X-MSGD-Content-Type"))
	test.Equal(t, true, strings.Contains(string(body), "messages: 1 (5 bytes)"))
	test.Equal(t, true, strings.Contains(string(body), "clients: 1 connected"))
}

func TestHTTPstatsExcludeClients(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	tcpAddr, httpAddr, msgd := mustStartMSGD(opts)
	defer msgd.Exit()

	conn := mustConnect(t, tcpAddr)
	defer conn.Close()
	_, err := conn.Write([]byte("hello"))
	test.Nil(t, err)
	test.Equal(t, ackResponse, readOne(t, conn))

	url := fmt.Sprintf("http://%s/stats?format=json&include_clients=false", httpAddr)
	resp, err := http.Get(url)
	test.Nil(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	test.Equal(t, 200, resp.StatusCode)

	stats := Stats{}
	err = json.Unmarshal(body, &stats)
	test.Nil(t, err)
	test.Equal(t, 0, len(stats.Clients))
	test.Equal(t, 1, stats.ClientCount)
	test.Equal(t, uint64(1), stats.MessageCount)
}
