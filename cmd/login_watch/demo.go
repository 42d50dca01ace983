package main

import (
	"context"
	"fmt"
	"io"

	"github.com/selectdb/login_watch/pkg/config"
	"github.com/selectdb/login_watch/pkg/login"
	"github.com/selectdb/login_watch/pkg/monitor"
	"github.com/selectdb/login_watch/pkg/utils"
	log "github.com/sirupsen/logrus"
)

type demo struct {
	cfg   config.Demo
	login *login.Login
	out   io.Writer
}

// newDemo wires the observers the way the walkthrough shows them: the
// partnership tool is attached and detached right away, so it never fires.
func newDemo(cfg config.Demo, selector login.Selector, out io.Writer) *demo {
	l := login.New(login.WithSelector(selector))

	monitor.NewSecurityMonitor(l, out)
	monitor.NewGeneralLogger(l, out)

	pt := monitor.NewPartnershipTool(l, out)
	l.Detach(pt)

	monitor.NewMetricsRecorder(l)

	return &demo{
		cfg:   cfg,
		login: l,
		out:   out,
	}
}

// run performs the configured number of attempts and returns how many were
// accepted. Cancelling ctx stops the loop before the next attempt.
func (d *demo) run(ctx context.Context) int {
	accepted := 0
	for i := 0; i < d.cfg.Attempts; i++ {
		if ctx.Err() != nil {
			log.Infof("login loop stopped after %d attempts", i)
			break
		}

		utils.WithAttempt(i+1, func() {
			if d.login.HandleLogin(d.cfg.User, d.cfg.Password, d.cfg.Origin) {
				accepted++
			}
		})
		fmt.Fprintln(d.out)
	}
	return accepted
}
