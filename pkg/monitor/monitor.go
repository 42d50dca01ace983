package monitor

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/selectdb/login_watch/pkg/login"
	"github.com/selectdb/login_watch/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

const (
	SecurityMonitorName = "SecurityMonitor"
	GeneralLoggerName   = "GeneralLogger"
	PartnershipToolName = "PartnershipTool"
	MetricsRecorderName = "MetricsRecorder"
)

// reaction decides what an observer does with the current status. An empty
// action means the observer stays silent.
type reaction func(status login.Status) (action string)

// LoginObserver is bound to the Login it was created with and ignores
// notifications from any other Login.
type LoginObserver struct {
	id        string
	name      string
	subjectID string
	out       io.Writer
	react     reaction
}

func newLoginObserver(l *login.Login, name string, out io.Writer, react reaction) *LoginObserver {
	if out == nil {
		out = io.Discard
	}

	o := &LoginObserver{
		id:        uuid.NewString(),
		name:      name,
		subjectID: l.ID(),
		out:       out,
		react:     react,
	}
	l.Attach(o)
	return o
}

func (o *LoginObserver) ID() string {
	return o.id
}

func (o *LoginObserver) Name() string {
	return o.name
}

func (o *LoginObserver) Update(l *login.Login) {
	if l == nil || l.ID() != o.subjectID {
		log.Tracef("%s ignores notification from foreign login", o.name)
		return
	}
	o.doUpdate(l)
}

func (o *LoginObserver) doUpdate(l *login.Login) {
	status, err := l.Status()
	if err != nil {
		log.Warnf("%s skip update: %+v", o.name, err)
		return
	}

	action := o.react(status)
	if action == "" {
		return
	}

	log.WithFields(log.Fields{
		"observer": o.name,
		"user":     status.User,
		"origin":   status.Origin,
	}).Debug(action)
	xmetrics.AddReaction(o.name)

	if _, err := fmt.Fprintf(o.out, "%s\t%s\n", o.name, action); err != nil {
		log.Warnf("%s write output failed: %v", o.name, err)
	}
}

func onWrongPassword(action string) reaction {
	return func(status login.Status) string {
		if status.Outcome != login.WrongPassword {
			return ""
		}
		return action
	}
}

// NewSecurityMonitor alerts the sysadmin on every wrong password.
func NewSecurityMonitor(l *login.Login, out io.Writer) *LoginObserver {
	return newLoginObserver(l, SecurityMonitorName, out, onWrongPassword("sending mail to sysadmin"))
}

// NewGeneralLogger appends a log entry on every wrong password.
func NewGeneralLogger(l *login.Login, out io.Writer) *LoginObserver {
	return newLoginObserver(l, GeneralLoggerName, out, onWrongPassword("add login data to log"))
}

// NewPartnershipTool reacts to every attempt, whatever its outcome.
func NewPartnershipTool(l *login.Login, out io.Writer) *LoginObserver {
	return newLoginObserver(l, PartnershipToolName, out, func(login.Status) string {
		return "set cookie if it matches a list"
	})
}

// NewMetricsRecorder counts every observed outcome and prints nothing.
func NewMetricsRecorder(l *login.Login) *LoginObserver {
	return newLoginObserver(l, MetricsRecorderName, io.Discard, func(status login.Status) string {
		xmetrics.ObserveOutcome(MetricsRecorderName, status.Outcome.String())
		return ""
	})
}
