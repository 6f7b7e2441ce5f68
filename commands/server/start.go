package server

import (
	"flag"
	"net/http"

	"github.com/iov-one/swapkit/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind    = "bind"
	flagDebug   = "debug"
	flagMetrics = "metrics"
)

type startOptions struct {
	bind    string
	metrics string
	debug   bool
}

func parseFlags(args []string) (startOptions, error) {
	var opts startOptions
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&opts.bind, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.StringVar(&opts.metrics, flagMetrics, "", "address the prometheus metrics are served on, disabled if empty")
	startFlags.BoolVar(&opts.debug, flagDebug, false, "call stack returned on error")
	if err := startFlags.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInput, err.Error())
	}
	return opts, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI socket
// until the process is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Generate the app in the proper dir
	app, err := gen(home, logger, opts.debug)
	if err != nil {
		return errors.Wrap(err, "create application")
	}

	if opts.metrics != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Info("Serving metrics", "bind", opts.metrics)
			if err := http.ListenAndServe(opts.metrics, mux); err != nil {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
	}

	logger.Info("Starting ABCI app", "bind", opts.bind)

	svr, err := server.NewServer(opts.bind, "socket", app)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "create listener: "+err.Error())
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(errors.ErrState, "start server: "+err.Error())
	}

	// Wait forever
	cmn.TrapSignal(logger, func() {
		// Cleanup
		svr.Stop()
	})
	return nil
}
