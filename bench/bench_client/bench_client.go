package main

import (
	"flag"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/protocol"
)

var (
	runfor         = flag.Duration("runfor", 10*time.Second, "duration of time to run")
	tcpAddress     = flag.String("msgd-tcp-address", "127.0.0.1:4190", "<addr>:<port> to connect to msgd")
	size           = flag.Int("size", 200, "size of messages")
	numConnections = flag.Int("num-connections", 10, "number of connections")
)

var totalMsgCount int64

func main() {
	flag.Parse()
	var wg sync.WaitGroup

	log.SetPrefix("[bench_client] ")

	if *size <= 0 || *size > protocol.MaxMessageSize {
		log.Fatalf("--size must be between 1 and %d", protocol.MaxMessageSize)
	}

	msg := make([]byte, *size)

	goChan := make(chan int)
	rdyChan := make(chan int)
	for j := 0; j < *numConnections; j++ {
		wg.Add(1)
		go func() {
			sendWorker(*runfor, *tcpAddress, msg, rdyChan, goChan)
			wg.Done()
		}()
		<-rdyChan
	}

	start := time.Now()
	close(goChan)
	wg.Wait()
	end := time.Now()
	duration := end.Sub(start)
	tmc := atomic.LoadInt64(&totalMsgCount)
	log.Printf("duration: %s - %.03fmb/s - %.03fops/s - %.03fus/op",
		duration,
		float64(tmc*int64(*size))/duration.Seconds()/1024/1024,
		float64(tmc)/duration.Seconds(),
		float64(duration/time.Microsecond)/float64(tmc))
}

func sendWorker(td time.Duration, tcpAddr string, msg []byte, rdyChan chan int, goChan chan int) {
	conn, err := net.DialTimeout("tcp", tcpAddr, time.Second)
	if err != nil {
		panic(err.Error())
	}
	reply := make([]byte, protocol.MaxMessageSize)
	rdyChan <- 1
	<-goChan
	var msgCount int64
	endTime := time.Now().Add(td)
	for {
		err := protocol.SendAll(conn, msg)
		if err != nil {
			panic(err.Error())
		}
		_, err = protocol.ReadSome(conn, reply)
		if err != nil {
			panic(err.Error())
		}
		msgCount++
		if time.Now().After(endTime) {
			break
		}
	}
	atomic.AddInt64(&totalMsgCount, msgCount)
}
