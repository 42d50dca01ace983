package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/selectdb/login_watch/pkg/config"
	"github.com/selectdb/login_watch/pkg/login"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

var testDemo = config.Demo{
	Attempts: 3,
	User:     "bob",
	Password: "mypass",
	Origin:   "123.22.112.1",
}

func TestDemoRun(t *testing.T) {
	var buf bytes.Buffer
	selector := login.SequenceSelector(login.WrongPassword, login.Access, login.UnknownUser)
	d := newDemo(testDemo, selector, &buf)

	accepted := d.run(context.Background())

	assert.Equal(t, 1, accepted)
	assert.Equal(t, "SecurityMonitor\tsending mail to sysadmin\n"+
		"GeneralLogger\tadd login data to log\n"+
		"\n\n\n", buf.String())
	// security monitor, general logger and metrics recorder; the partnership tool is gone
	assert.Equal(t, 3, d.login.NumObservers())
}

func TestDemoRunCancelled(t *testing.T) {
	var buf bytes.Buffer
	d := newDemo(testDemo, login.FixedSelector(login.WrongPassword), &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, d.run(ctx))
	assert.Empty(t, buf.String())
}
