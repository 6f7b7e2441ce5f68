package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts every delivered transaction together
// with its result code and observes how long the processing took. Check
// calls are not measured.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ swapkit.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator and registers its collectors with
// given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swapkit",
			Name:      "tx_total",
			Help:      "Number of delivered transactions by message path and result code.",
		}, []string{"path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "swapkit",
			Name:      "tx_duration_seconds",
			Help:      "Time spent delivering a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"path"}),
	}
	if err := reg.Register(m.total); err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	return m, nil
}

// Check passes the request along.
func (m *Metrics) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Checker) (*swapkit.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver records the result code and the processing time.
func (m *Metrics) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Deliverer) (*swapkit.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)

	path := swapkit.GetPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.total.WithLabelValues(path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	return res, err
}
