package xmetrics

import (
	"strings"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/selectdb/login_watch/pkg/xerror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A single interval long enough to hold a whole demo run.
const inmemInterval = 24 * time.Hour

type Counter struct {
	Name  string
	Count int
	Sum   float64
}

func NewInmemSink() *metrics.InmemSink {
	return metrics.NewInmemSink(inmemInterval, inmemInterval)
}

func InitGlobal(serviceName string, sink metrics.MetricSink) error {
	if sink == nil {
		return xerror.New(xerror.Metrics, "metrics sink is nil")
	}

	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	if _, err := metrics.NewGlobal(conf, sink); err != nil {
		return xerror.Wrap(err, xerror.Metrics, "new global metrics failed")
	}

	return nil
}

func AddAttempt(outcome string, accepted bool) {
	metrics.IncrCounter(LoginMetrics().Attempt(outcome).Tag(), 1)
	if accepted {
		metrics.IncrCounter(LoginMetrics().Accepted().Tag(), 1)
	} else {
		metrics.IncrCounter(LoginMetrics().Rejected().Tag(), 1)
	}
}

func AddNotification(delivered int) {
	metrics.IncrCounter(NotifyMetrics().Rounds().Tag(), 1)
	metrics.IncrCounter(NotifyMetrics().Deliveries().Tag(), float32(delivered))
}

func ObserveOutcome(observerName string, outcome string) {
	metrics.IncrCounter(ObserverMetrics(observerName).Observed(outcome).Tag(), 1)
}

func AddReaction(observerName string) {
	metrics.IncrCounter(ObserverMetrics(observerName).Reacted().Tag(), 1)
}

func AddError(err *xerror.XError) {
	if err == nil {
		return
	}
	metrics.IncrCounter(ErrorMetrics(err).Tag(), 1)
}

// Summary returns the counters of the latest interval, sorted by name.
// The service name prefix is stripped.
func Summary(sink *metrics.InmemSink, serviceName string) []Counter {
	data := sink.Data()
	if len(data) == 0 {
		return nil
	}

	counters := data[len(data)-1].Counters
	names := maps.Keys(counters)
	slices.Sort(names)

	summary := make([]Counter, 0, len(names))
	for _, name := range names {
		value := counters[name]
		counter := Counter{Name: strings.TrimPrefix(name, serviceName+".")}
		if value.AggregateSample != nil {
			counter.Count = value.Count
			counter.Sum = value.Sum
		}
		summary = append(summary, counter)
	}
	return summary
}

// Lookup returns the counter sum for the given tag, 0 if it was never incremented.
func Lookup(summary []Counter, tag IMetricsTag) float64 {
	name := strings.Join(tag.Tag(), ".")
	idx := slices.IndexFunc(summary, func(c Counter) bool { return c.Name == name })
	if idx < 0 {
		return 0
	}
	return summary[idx].Sum
}
