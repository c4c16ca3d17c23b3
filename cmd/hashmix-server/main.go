package main

import (
	"flag"
	"net"
	"net/http"

	statsd "github.com/etsy/statsd/examples/go"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vharitonsky/iniflags"
	"golang.org/x/time/rate"
)

var listenAddr string
var statsdAddr string
var mixBytesPerSec int

var statClient *statsd.StatsdClient
var mixLimiter *rate.Limiter

func main() {
	flag.StringVar(&listenAddr, "listen", ":9090", "HTTP listening address")
	flag.StringVar(&statsdAddr, "statsd", "", "statsd server address; empty disables stats")
	flag.IntVar(&mixBytesPerSec, "mixRate", 10*1000*1000, "ingress limit on /mix, in bytes per second")
	iniflags.Parse()
	if statsdAddr != "" {
		z, e := net.ResolveUDPAddr("udp", statsdAddr)
		if e != nil {
			log.Fatal("cannot resolve statsd address: ", e)
		}
		statClient = statsd.New(z.IP.String(), z.Port)
	}
	mixLimiter = rate.NewLimiter(rate.Limit(mixBytesPerSec), mixBytesPerSec)
	log.Infoln("hashmix server started on", listenAddr)

	r := mux.NewRouter()
	r.HandleFunc("/mix", handleMix)
	r.HandleFunc("/seed", handleSeed)
	if err := http.ListenAndServe(listenAddr, r); err != nil {
		panic(err)
	}
}
