package msgd

import (
	"log"
	"os"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
)

type Options struct {
	LogLevel  lg.LogLevel `flag:"log-level"`
	LogPrefix string      `flag:"log-prefix"`
	Logger    Logger

	TCPAddress       string `flag:"tcp-address"`
	HTTPAddress      string `flag:"http-address"`
	BroadcastAddress string `flag:"broadcast-address"`

	StatsdAddress       string        `flag:"statsd-address"`
	StatsdPrefix        string        `flag:"statsd-prefix"`
	StatsdInterval      time.Duration `flag:"statsd-interval"`
	StatsdUDPPacketSize int64         `flag:"statsd-udp-packet-size"`

	AckLatencyWindowTime  time.Duration `flag:"ack-latency-window-time"`
	AckLatencyPercentiles []float64     `flag:"ack-latency-percentile" cfg:"ack_latency_percentiles"`
}

func NewOptions() *Options {
	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal(err)
	}

	return &Options{
		LogPrefix: "[msgd] ",
		LogLevel:  lg.INFO,

		TCPAddress:       "0.0.0.0:4190",
		HTTPAddress:      "0.0.0.0:4191",
		BroadcastAddress: hostname,

		StatsdPrefix:        "msgd.%s",
		StatsdInterval:      60 * time.Second,
		StatsdUDPPacketSize: 508,

		AckLatencyWindowTime: 10 * time.Minute,
	}
}
