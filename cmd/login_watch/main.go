package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/selectdb/login_watch/pkg/config"
	"github.com/selectdb/login_watch/pkg/login"
	"github.com/selectdb/login_watch/pkg/utils"
	"github.com/selectdb/login_watch/pkg/version"
	"github.com/selectdb/login_watch/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

var (
	configPath  string
	showVersion bool
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "The program's version")
	flag.StringVar(&configPath, "config", "", "yaml config file, env LOGINWATCH_* is used when empty")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	if err := utils.InitLog(); err != nil {
		fmt.Printf("init log failed: %+v\n", err)
		os.Exit(1)
	}

	log.Infof("login watch start, version: %s", version.GetVersion())

	// Step 1: load config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config error: %+v", err)
	}

	// Step 2: init metrics
	sink := xmetrics.NewInmemSink()
	if err := xmetrics.InitGlobal(cfg.ServiceName, sink); err != nil {
		log.Fatalf("init metrics error: %+v", err)
	}

	// Step 3: stop between attempts on signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalMux := NewSignalMux(func(sig os.Signal) bool {
		log.Infof("stop login loop on signal %s", sig)
		cancel()
		return true
	})
	defer signalMux.Stop()
	go signalMux.Serve()

	// Step 4: run the attempts
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := newDemo(cfg.Demo, login.RandomSelector(seed), os.Stdout)
	accepted := d.run(ctx)
	log.Infof("login loop done, attempts: %d, accepted: %d", cfg.Attempts, accepted)

	for _, counter := range xmetrics.Summary(sink, cfg.ServiceName) {
		log.Infof("[METRICS] %s = %v", counter.Name, counter.Sum)
	}
}
