package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// SignalMux hands received signals to handler until handler returns true or
// Stop is called.
type SignalMux struct {
	sigChan chan os.Signal
	done    chan struct{}
	handler func(os.Signal) bool
}

func NewSignalMux(handler func(os.Signal) bool) *SignalMux {
	if handler == nil {
		log.Panic("signal handler is nil")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)

	return &SignalMux{
		sigChan: sigChan,
		done:    make(chan struct{}),
		handler: handler,
	}
}

func (s *SignalMux) Serve() {
	for {
		select {
		case sig := <-s.sigChan:
			log.Infof("receive signal: %s", sig.String())
			if s.handler(sig) {
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *SignalMux) Stop() {
	signal.Stop(s.sigChan)
	close(s.done)
}
