package main

import (
	"flag"
	"fmt"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/app"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
	"github.com/Mingdi-Luo/EE533-Lab1/msgd"
)

func msgdFlagSet(opts *msgd.Options) *flag.FlagSet {
	flagSet := flag.NewFlagSet("msgd", flag.ExitOnError)

	// basic options
	flagSet.Bool("version", false, "print version string")
	flagSet.String("config", "", "path to config file")

	logLevel := opts.LogLevel
	flagSet.Var(&logLevel, "log-level", "set log verbosity: debug, info, warn, error, or fatal")
	flagSet.String("log-prefix", "[msgd] ", "log message prefix")

	flagSet.String("tcp-address", opts.TCPAddress, "<addr>:<port> to listen on for TCP clients")
	flagSet.String("http-address", opts.HTTPAddress, "<addr>:<port> to listen on for HTTP clients")
	flagSet.String("broadcast-address", opts.BroadcastAddress, "address of this msgd instance as reported by /info (defaults to the OS hostname)")

	// statsd integration options
	flagSet.String("statsd-address", opts.StatsdAddress, "UDP <addr>:<port> of a statsd daemon for pushing stats")
	flagSet.Duration("statsd-interval", opts.StatsdInterval, "duration between pushing to statsd")
	flagSet.String("statsd-prefix", opts.StatsdPrefix, "prefix used for keys sent to statsd (%s for host replacement)")
	flagSet.Int64("statsd-udp-packet-size", opts.StatsdUDPPacketSize, "the size in bytes of statsd UDP packets")

	// acknowledgement latency percentile flags
	ackLatencyPercentiles := app.FloatArray{}
	flagSet.Var(&ackLatencyPercentiles, "ack-latency-percentile", "acknowledgement latency percentiles to keep track of (can be specified multiple times, default none)")
	flagSet.Duration("ack-latency-window-time", opts.AckLatencyWindowTime, "calculate acknowledgement latency quantiles for this duration of time (ie: 60s would only show quantile calculations from the past 60 seconds)")

	return flagSet
}

type config map[string]interface{}

// Validate settings in the config file, and fatal on errors
func (cfg config) Validate() {
	if v, exists := cfg["log_level"]; exists {
		var t lg.LogLevel
		err := t.Set(fmt.Sprintf("%v", v))
		if err == nil {
			cfg["log_level"] = t
		} else {
			logFatal("failed parsing log_level %+v", v)
		}
	}
}
