package msgd

import (
	"fmt"
	"net"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/statsd"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/writers"
)

func (m *MSGD) statsdLoop() {
	var lastStats Stats
	interval := m.opts.StatsdInterval
	ticker := time.NewTicker(interval)
	for {
		select {
		case <-m.exitChan:
			goto exit
		case <-ticker.C:
			addr := m.opts.StatsdAddress
			prefix := m.opts.StatsdPrefix
			conn, err := net.DialTimeout("udp", addr, time.Second)
			if err != nil {
				m.logf(LOG_ERROR, "failed to create UDP socket to statsd(%s)", addr)
				continue
			}
			sw := writers.NewSpreadWriter(conn, interval-time.Second, m.exitChan)
			bw := writers.NewBoundaryBufferedWriter(sw, int(m.opts.StatsdUDPPacketSize))
			client := statsd.NewClient(bw, prefix)

			m.logf(LOG_INFO, "STATSD: pushing stats to %s", addr)

			stats := m.GetStats(false)

			client.Incr("message_count", int64(stats.MessageCount-lastStats.MessageCount))
			client.Incr("message_bytes", int64(stats.MessageBytes-lastStats.MessageBytes))
			client.Incr("total_client_count", int64(stats.TotalClientCount-lastStats.TotalClientCount))
			client.Gauge("clients", int64(stats.ClientCount))

			for _, item := range stats.AckLatency.Percentiles {
				stat := fmt.Sprintf("ack_latency_%.0f", item["quantile"]*100.0)
				client.Gauge(stat, int64(item["value"]))
			}

			lastStats = stats
			bw.Flush()
			sw.Flush()
			conn.Close()
		}
	}
exit:
	ticker.Stop()
	m.logf(LOG_INFO, "STATSD: closing")
}
