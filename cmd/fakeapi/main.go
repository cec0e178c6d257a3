// Package main runs the in-memory GramUdyog fixture backend, seeded with a
// small demo catalogue, for local development of the client.
package main

import (
	"cmp"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/gramudyogai/gramudyog-go/internal/config"
	"github.com/gramudyogai/gramudyog-go/internal/fakeapi"
	"github.com/gramudyogai/gramudyog-go/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()

	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := options.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	secret := []byte(options.Fake.Secret)
	if len(secret) == 0 {
		// Tokens do not survive a restart anyway; the store is in memory.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			zapLogger.Fatal("failed to generate signing secret", zap.Error(err))
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := fakeapi.New(fakeapi.Config{
		Secret:   secret,
		Registry: reg,
		Log:      zapLogger,
	})
	fakeapi.Seed(srv.Store)

	server := &http.Server{
		Addr:    options.Fake.Addr,
		Handler: srv,
	}

	if options.Fake.CertFile == "" || options.Fake.KeyFile == "" {
		zapLogger.Info("starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
		return
	}

	tlsConfig, err := serverTLS(options.Fake.CertFile, options.Fake.KeyFile, options.TLS.CAFile)
	if err != nil {
		zapLogger.Fatal("failed to configure TLS", zap.Error(err))
	}
	server.TLSConfig = tlsConfig

	zapLogger.Info("starting HTTPS server", zap.String("addr", server.Addr))
	if err := server.ListenAndServeTLS("", ""); err != nil {
		zapLogger.Fatal("failed to start HTTPS server", zap.Error(err))
	}
}

// serverTLS loads the server key pair. With a CA file, client certificates
// signed by it are verified when presented.
func serverTLS(certFile, keyFile, caFile string) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("load server cert/key: %w", err)
	}
	cfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	if caFile == "" {
		return cfg, nil
	}

	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("read CA cert: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no certificates in %s", caFile)
	}
	cfg.ClientAuth = tls.VerifyClientCertIfGiven
	cfg.ClientCAs = pool
	return cfg, nil
}
