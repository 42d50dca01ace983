package login

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/selectdb/login_watch/pkg/observer"
	"github.com/selectdb/login_watch/pkg/xerror"
	"github.com/selectdb/login_watch/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=login.go -destination=mock_login/login.go

var ErrStatusUnset = errors.New("login status not set")

// Observer reacts to status changes of a Login. Implementations receive the
// notifying Login and pull its Status themselves.
type Observer interface {
	Update(l *Login)
	ID() string
}

type Option func(*Login)

func WithSelector(selector Selector) Option {
	return func(l *Login) {
		if selector != nil {
			l.selector = selector
		}
	}
}

// Login is the subject of a simulated login flow.
type Login struct {
	id        string
	observers *observer.Subject[*Login]
	status    Status
	hasStatus bool
	selector  Selector
}

func New(opts ...Option) *Login {
	l := &Login{
		id:        uuid.NewString(),
		observers: observer.NewSubject[*Login](),
		selector:  RandomSelector(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Login) ID() string {
	return l.id
}

func (l *Login) Attach(o Observer) {
	if o == nil {
		return
	}
	log.Debugf("login %s attach observer %s", l.id, o.ID())
	l.observers.Attach(o)
}

// Detach removes every attachment of o and returns how many were removed.
func (l *Login) Detach(o Observer) int {
	if o == nil {
		return 0
	}
	removed := l.observers.Detach(o)
	log.Debugf("login %s detach observer %s, removed %d", l.id, o.ID(), removed)
	return removed
}

func (l *Login) Attached(o Observer) bool {
	if o == nil {
		return false
	}
	return l.observers.Contains(o)
}

func (l *Login) NumObservers() int {
	return l.observers.Len()
}

// Notify calls Update on every attached observer in attach order and returns
// the number of deliveries.
func (l *Login) Notify() int {
	delivered := l.observers.Notify(l)
	xmetrics.AddNotification(delivered)
	return delivered
}

func (l *Login) setStatus(outcome Outcome, user, origin string) {
	l.status = Status{
		Outcome: outcome,
		User:    user,
		Origin:  origin,
	}
	l.hasStatus = true
}

// Status returns the current status, or an error wrapping ErrStatusUnset if no
// attempt has been handled yet.
func (l *Login) Status() (Status, error) {
	if !l.hasStatus {
		return Status{}, xerror.Errorf(xerror.Login, "login %s: %w", l.id, ErrStatusUnset)
	}
	return l.status, nil
}

// HandleLogin simulates a login attempt: the selector decides the outcome, which
// is recorded and pushed to the observers. Only Access returns true.
// The password is not checked by the stub selectors.
func (l *Login) HandleLogin(user, pass, origin string) bool {
	outcome := l.selector()
	if !outcome.IsValid() {
		err := xerror.Errorf(xerror.Login, "selector returned invalid outcome %s", outcome)
		log.Warnf("handle login for %s: %+v, treat as %s", user, err, UnknownUser)
		xmetrics.AddError(xerror.As(err))
		outcome = UnknownUser
	}

	l.setStatus(outcome, user, origin)
	log.WithFields(log.Fields{
		"user":    user,
		"origin":  origin,
		"outcome": outcome.String(),
	}).Debug("login attempt handled")

	accepted := outcome == Access
	xmetrics.AddAttempt(outcome.String(), accepted)
	l.Notify()

	return accepted
}
