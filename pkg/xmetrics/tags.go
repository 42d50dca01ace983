package xmetrics

import "github.com/selectdb/login_watch/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// login metrics
type loginMetrics struct {
	metricsTag
}

func LoginMetrics() *loginMetrics {
	return &loginMetrics{
		metricsTag: metricsTag{[]string{"login"}},
	}
}

func (l *loginMetrics) Tag() []string {
	return l.tags
}

func (l *loginMetrics) Attempt(outcome string) IMetricsTag {
	l.tags = append(l.tags, "attempt", outcome)
	return l
}

func (l *loginMetrics) Accepted() IMetricsTag {
	l.tags = append(l.tags, "accepted")
	return l
}

func (l *loginMetrics) Rejected() IMetricsTag {
	l.tags = append(l.tags, "rejected")
	return l
}

// observer metrics
type observerMetrics struct {
	metricsTag
	name string
}

func ObserverMetrics(observerName string) *observerMetrics {
	return &observerMetrics{
		metricsTag: metricsTag{[]string{"observer"}},
		name:       observerName,
	}
}

func (o *observerMetrics) Tag() []string {
	return append([]string{o.tags[0], o.name}, o.tags[1:]...)
}

func (o *observerMetrics) Observed(outcome string) IMetricsTag {
	o.tags = append(o.tags, "observed", outcome)
	return o
}

func (o *observerMetrics) Reacted() IMetricsTag {
	o.tags = append(o.tags, "reacted")
	return o
}

// notification metrics
type notifyMetrics struct {
	metricsTag
}

func NotifyMetrics() *notifyMetrics {
	return &notifyMetrics{
		metricsTag: metricsTag{[]string{"notify"}},
	}
}

func (n *notifyMetrics) Tag() []string {
	return n.tags
}

func (n *notifyMetrics) Rounds() IMetricsTag {
	n.tags = append(n.tags, "rounds")
	return n
}

func (n *notifyMetrics) Deliveries() IMetricsTag {
	n.tags = append(n.tags, "deliveries")
	return n
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	if err.IsRecoverable() {
		errMetrics.tags = append(errMetrics.tags, "recoverable")
	} else if err.IsPanic() {
		errMetrics.tags = append(errMetrics.tags, "panic")
	} else {
		errMetrics.tags = append(errMetrics.tags, "unknown")
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
