package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

const AttemptField = "attempt"

// AttemptHook copies the goroutine local attempt number into every entry.
type AttemptHook struct {
	Field  string
	levels []logrus.Level
}

func (hook *AttemptHook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *AttemptHook) Fire(entry *logrus.Entry) error {
	if attempt := gls.Get(hook.Field); attempt != nil {
		entry.Data[hook.Field] = attempt
	}
	return nil
}

func NewAttemptHook(levels ...logrus.Level) *AttemptHook {
	hook := AttemptHook{
		Field:  AttemptField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// WithAttempt runs fn with the attempt number bound to the current goroutine.
func WithAttempt(attempt int, fn func()) {
	goid := gls.GoID()
	gls.ResetGls(goid, map[interface{}]interface{}{})
	defer gls.DeleteGls(goid)

	gls.Set(AttemptField, attempt)
	fn()
}
