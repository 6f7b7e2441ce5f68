package utils

import (
	"time"

	"github.com/iov-one/swapkit"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ swapkit.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Checker) (*swapkit.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, swapkit.GetPath(tx), resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Deliverer) (*swapkit.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, swapkit.GetPath(tx), resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx swapkit.Context, start time.Time, path, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := swapkit.GetLogger(ctx).With("path", path, "duration", delta/time.Microsecond)

	// An empty message is still logged, the key values carry the result.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
