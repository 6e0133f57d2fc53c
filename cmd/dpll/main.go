package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/orosp/iproute2/internal/cliopts"
	"github.com/orosp/iproute2/internal/config"
	"github.com/orosp/iproute2/internal/dispatch"
	"github.com/orosp/iproute2/internal/logging"
	"github.com/orosp/iproute2/internal/metrics"
	"github.com/orosp/iproute2/internal/output"
)

func main() {
	logging.ConfigureRuntime()

	opts, err := cliopts.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(exitFor(dispatch.UsageError))
	}
	if opts.Version {
		fmt.Println("dpll version 1.0.0")
		return
	}

	prefs, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load preferences")
	}

	if addr := os.Getenv("DPLLCTL_METRICS_ADDR"); addr != "" {
		serveMetrics(addr)
	}

	sink := newSink(opts, prefs)

	if !dispatch.NeedsTransport(opts.Args) {
		if err := dispatch.Dispatch(context.Background(), nil, opts.Args, sink); err != nil {
			reportAndExit(err)
		}
		return
	}

	recvTimeout := prefs.RecvTimeout
	if recvTimeout <= 0 {
		recvTimeout = config.DefaultRecvTimeout
	}
	client, err := dispatch.Open(recvTimeout)
	if err != nil {
		reportAndExit(err)
	}
	defer client.Close()
	client.SetMonitorTick(prefs.MonitorTimeout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := dispatch.Dispatch(ctx, client, opts.Args, sink); err != nil {
		reportAndExit(err)
	}

	if js, ok := sink.(interface{ Close() error }); ok {
		if err := js.Close(); err != nil {
			log.Fatal().Err(err).Msg("failed to flush output")
		}
	}
}

func newSink(opts cliopts.Options, prefs config.Preferences) output.Sink {
	useJSON := opts.JSON || prefs.JSON
	pretty := opts.Pretty || prefs.Pretty
	if useJSON {
		return output.NewJSONSink(os.Stdout, pretty)
	}
	return output.NewTextSink(os.Stdout)
}

func serveMetrics(addr string) {
	metrics.Register()
	mux := http.NewServeMux()
	mux.Handle(metrics.Handler, promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()
}

func reportAndExit(err error) {
	derr, ok := err.(*dispatch.Error)
	if !ok {
		log.Error().Err(err).Msg("dpll failed")
		os.Exit(exitFor(dispatch.UsageError))
	}
	fmt.Fprintf(os.Stderr, "dpll: %v\n", derr)
	os.Exit(exitFor(derr.Kind))
}

// exitFor maps a dispatch error Kind to its process exit code. Every
// error kind exits 1; 0 is reserved for success and -V.
func exitFor(kind dispatch.Kind) int {
	return 1
}
