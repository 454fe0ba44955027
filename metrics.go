package userinfo

import (
	"github.com/rcrowley/go-metrics"
)

type outcomeMetrics struct {
	positive metrics.Counter
	negative metrics.Counter
	failed   metrics.Counter
}

func newOutcomeMetrics(check, positive, negative string) *outcomeMetrics {
	prefix := "userinfo." + check + "."
	return &outcomeMetrics{
		positive: metrics.GetOrRegisterCounter(prefix+positive, nil),
		negative: metrics.GetOrRegisterCounter(prefix+negative, nil),
		failed:   metrics.GetOrRegisterCounter(prefix+"error", nil),
	}
}

func (o *outcomeMetrics) observe(ok bool, err error) {
	switch {
	case err != nil:
		o.failed.Inc(1)
	case ok:
		o.positive.Inc(1)
	default:
		o.negative.Inc(1)
	}
}

type accountMetrics struct {
	found       metrics.Counter
	empty       metrics.Counter
	unsupported metrics.Counter
	failed      metrics.Counter
	count       metrics.Histogram
}

type checkMetrics struct {
	admin    *outcomeMetrics
	logon    *outcomeMetrics
	accounts accountMetrics
}

// newCheckMetrics registers with the default registry, every Checker in a process shares the same counters.
func newCheckMetrics() *checkMetrics {
	return &checkMetrics{
		admin: newOutcomeMetrics("admin", "granted", "denied"),
		logon: newOutcomeMetrics("logon", "accepted", "rejected"),
		accounts: accountMetrics{
			found:       metrics.GetOrRegisterCounter("userinfo.accounts.found", nil),
			empty:       metrics.GetOrRegisterCounter("userinfo.accounts.empty", nil),
			unsupported: metrics.GetOrRegisterCounter("userinfo.accounts.unsupported", nil),
			failed:      metrics.GetOrRegisterCounter("userinfo.accounts.error", nil),
			count:       metrics.GetOrRegisterHistogram("userinfo.accounts.count", nil, metrics.NewUniformSample(128)),
		},
	}
}
