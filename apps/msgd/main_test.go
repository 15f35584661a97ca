package main

import (
	"os"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/judwhite/go-svc"
	"github.com/mreiferson/go-options"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/test"
	"github.com/Mingdi-Luo/EE533-Lab1/msgd"
)

func TestConfigFlagParsing(t *testing.T) {
	opts := msgd.NewOptions()
	opts.Logger = test.NewTestLogger(t)

	flagSet := msgdFlagSet(opts)
	flagSet.Parse([]string{})

	var cfg config
	f, err := os.Open("../../contrib/msgd.cfg.example")
	if err != nil {
		t.Fatalf("%s", err)
	}
	defer f.Close()
	toml.NewDecoder(f).Decode(&cfg)
	cfg["log_level"] = "debug"
	cfg.Validate()

	options.Resolve(opts, flagSet, cfg)

	if opts.LogLevel != lg.DEBUG {
		t.Fatalf("log level: want debug, got %s", opts.LogLevel.String())
	}
	if len(opts.AckLatencyPercentiles) != 3 {
		t.Fatalf("ack latency percentiles: want 3, got %d", len(opts.AckLatencyPercentiles))
	}
}

func TestProgramHandle(t *testing.T) {
	p := &program{}
	err := p.Handle(os.Interrupt)
	if err != svc.ErrStop {
		t.Fatalf("expected svc.ErrStop, got %v", err)
	}
}
