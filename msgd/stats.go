package msgd

import (
	"sort"
	"sync/atomic"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/quantile"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
)

type Stats struct {
	Version          string           `json:"version"`
	StartTime        int64            `json:"start_time"`
	ClientCount      int              `json:"client_count"`
	TotalClientCount uint64           `json:"total_client_count"`
	MessageCount     uint64           `json:"message_count"`
	MessageBytes     uint64           `json:"message_bytes"`
	Clients          []ClientStats    `json:"clients"`
	AckLatency       *quantile.Result `json:"ack_latency"`
}

type ClientStats struct {
	ID            int64  `json:"id"`
	RemoteAddress string `json:"remote_address"`
	ConnectTime   int64  `json:"connect_ts"`
	MessageCount  uint64 `json:"message_count"`
	MessageBytes  uint64 `json:"message_bytes"`
}

func (m *MSGD) GetStats(includeClients bool) Stats {
	var clients []ClientStats
	clientCount := 0
	m.tcpServer.conns.Range(func(k, v interface{}) bool {
		clientCount++
		if includeClients {
			clients = append(clients, v.(*clientV1).Stats())
		}
		return true
	})
	if includeClients {
		sort.Slice(clients, func(i, j int) bool {
			return clients[i].ID < clients[j].ID
		})
	}

	return Stats{
		Version:          version.Binary,
		StartTime:        m.startTime.Unix(),
		ClientCount:      clientCount,
		TotalClientCount: atomic.LoadUint64(&m.totalClientCount),
		MessageCount:     atomic.LoadUint64(&m.messageCount),
		MessageBytes:     atomic.LoadUint64(&m.messageBytes),
		Clients:          clients,
		AckLatency:       m.ackLatencyStream.Result(),
	}
}
