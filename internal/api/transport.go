package api

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// TLSOptions describes extra trust and client identity for HTTPS backends.
type TLSOptions struct {
	// CAFile is a PEM bundle trusted in addition to the system roots.
	CAFile string
	// CertFile and KeyFile, when both set, are presented as the client
	// certificate.
	CertFile string
	KeyFile  string
}

// Empty reports whether no TLS customisation is configured.
func (o TLSOptions) Empty() bool {
	return o.CAFile == "" && o.CertFile == "" && o.KeyFile == ""
}

// NewHTTPClient builds an *http.Client honouring opts. It sets no client
// timeout; the executor applies its own per-request deadline.
func NewHTTPClient(opts TLSOptions) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Empty() {
		return &http.Client{Transport: transport}, nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if opts.CAFile != "" {
		caCert, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("failed to parse CA cert")
		}
		cfg.RootCAs = pool
	}

	if (opts.CertFile == "") != (opts.KeyFile == "") {
		return nil, errors.New("client certificate needs both cert and key files")
	}
	if opts.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert/key: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	transport.TLSClientConfig = cfg
	return &http.Client{Transport: transport}, nil
}
