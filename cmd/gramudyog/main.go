// Package main is the GramUdyog command line client: it signs in, keeps the
// session in the configured store and calls the backend on the user's
// behalf, either one command per run or in an interactive shell.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/api"
	"github.com/gramudyogai/gramudyog-go/internal/config"
	"github.com/gramudyogai/gramudyog-go/internal/logger"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func buildVersion() string { return cmp.Or(version, "N/A") }
func buildTime() string    { return cmp.Or(buildDate, "N/A") }

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(argv []string) int {
	options, err := config.Parse(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := options.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	zapLogger := log.Log

	store, err := openStore(options.Session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Warn("failed to close session store", zap.Error(err))
		}
	}()
	sess := session.NewManager(store)

	httpClient, err := api.NewHTTPClient(api.TLSOptions{
		CAFile:   options.TLS.CAFile,
		CertFile: options.TLS.CertFile,
		KeyFile:  options.TLS.KeyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	clientMetrics, flushMetrics := newClientMetrics(options.MetricsFile)
	defer func() {
		if err := flushMetrics(); err != nil {
			zapLogger.Warn("failed to write metrics", zap.String("path", options.MetricsFile), zap.Error(err))
		}
	}()

	client := api.New(options.BaseURL,
		api.WithHTTPClient(httpClient),
		api.WithSession(sess),
		api.WithLogger(zapLogger),
		api.WithTimeout(options.Timeout),
		api.WithTranscribeTimeout(options.TranscribeTimeout),
		api.WithRateLimit(options.RateLimit, options.RateBurst),
		api.WithMetrics(clientMetrics),
		api.WithUserAgent("gramudyog-cli/"+buildVersion()),
	)

	name, args := options.Command, options.Args
	if name == "" && len(args) > 0 {
		name, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(client, sess, os.Stdin, os.Stdout, zapLogger)
	a.store = store
	if err := a.run(ctx, name, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
