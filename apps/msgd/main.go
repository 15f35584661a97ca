package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/judwhite/go-svc"
	"github.com/mreiferson/go-options"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/lg"
	"github.com/Mingdi-Luo/EE533-Lab1/internal/version"
	"github.com/Mingdi-Luo/EE533-Lab1/msgd"
)

type program struct {
	once sync.Once
	msgd *msgd.MSGD
}

func main() {
	prg := &program{}
	if err := svc.Run(prg, syscall.SIGINT, syscall.SIGTERM); err != nil {
		logFatal("%s", err)
	}
}

func (p *program) Init(env svc.Environment) error {
	if env.IsWindowsService() {
		dir := filepath.Dir(os.Args[0])
		return os.Chdir(dir)
	}
	return nil
}

func (p *program) Start() error {
	opts := msgd.NewOptions()

	flagSet := msgdFlagSet(opts)
	flagSet.Parse(os.Args[1:])

	if flagSet.Lookup("version").Value.(flag.Getter).Get().(bool) {
		fmt.Println(version.String("msgd"))
		os.Exit(0)
	}

	var cfg config
	configFile := flagSet.Lookup("config").Value.String()
	if configFile != "" {
		_, err := toml.DecodeFile(configFile, &cfg)
		if err != nil {
			logFatal("failed to load config file %s - %s", configFile, err)
		}
	}
	cfg.Validate()

	options.Resolve(opts, flagSet, cfg)

	// a bare PORT argument overrides the port given by --tcp-address
	if args := flagSet.Args(); len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil || port < 1 || port > 65535 {
			logFatal("invalid port %q", args[0])
		}
		host, _, err := net.SplitHostPort(opts.TCPAddress)
		if err != nil {
			logFatal("failed to parse --tcp-address (%s) - %s", opts.TCPAddress, err)
		}
		opts.TCPAddress = net.JoinHostPort(host, args[0])
	}

	m, err := msgd.New(opts)
	if err != nil {
		logFatal("failed to instantiate msgd - %s", err)
	}
	p.msgd = m

	go func() {
		err := p.msgd.Main()
		if err != nil {
			p.Stop()
			os.Exit(1)
		}
	}()

	return nil
}

func (p *program) Stop() error {
	p.once.Do(func() {
		p.msgd.Exit()
	})
	return nil
}

func (p *program) Handle(s os.Signal) error {
	return svc.ErrStop
}

func logFatal(f string, args ...interface{}) {
	lg.LogFatal("[msgd] ", f, args...)
}
