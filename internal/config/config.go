// Package config provides functionality for managing configuration options
// of the CLI and the fixture backend using command-line flags, an optional
// YAML (or JSON) file and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Session backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendPGX      = "pgx"
)

// Defaults.
const (
	DefaultBaseURL    = "http://localhost:8000"
	DefaultConfigFile = "gramudyog.yaml"
	DefaultEnvFile    = ".env"
	DefaultTimeout    = 30 * time.Second
	DefaultTranscribe = 10 * time.Second
	DefaultLogLevel   = "info"
	DefaultFakeAddr   = "localhost:8000"
)

// Environment variables read by Parse. BaseURL falls back to the variable
// the web frontend used. Variables missing from the process environment are
// taken from the dotenv file.
const (
	EnvConfig            = "GRAMUDYOG_CONFIG"
	EnvBaseURL           = "GRAMUDYOG_API_BASE_URL"
	EnvBaseURLFallback   = "VITE_API_BASE_URL"
	EnvLogLevel          = "GRAMUDYOG_LOG_LEVEL"
	EnvSessionPassphrase = "GRAMUDYOG_SESSION_PASSPHRASE"
	EnvFakeAddr          = "GRAMUDYOG_FAKE_ADDRESS"
	EnvFakeSecret        = "GRAMUDYOG_FAKE_SECRET"
)

// SessionOptions selects where credentials are kept between runs.
type SessionOptions struct {
	// Backend is one of memory, file, sqlite, postgres or pgx.
	Backend string `yaml:"backend"`
	// Path is the session file of the file backend.
	Path string `yaml:"path"`
	// DSN is the database of the sqlite, postgres and pgx backends.
	DSN string `yaml:"dsn"`
	// KeyFile seals the session file with a key read from this file.
	KeyFile string `yaml:"key_file"`
	// Passphrase seals the session file with a key derived from it.
	Passphrase string `yaml:"passphrase"`
}

// TLSOptions adds trust and a client identity for HTTPS backends.
type TLSOptions struct {
	CAFile   string `yaml:"ca_file"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// FakeOptions configures the fixture backend.
type FakeOptions struct {
	// Addr is the listening address (ip:port).
	Addr string `yaml:"addr"`
	// Secret signs issued tokens.
	Secret string `yaml:"secret"`
	// CertFile and KeyFile switch the fixture to HTTPS.
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// Options holds the configuration values.
type Options struct {
	BaseURL           string         `yaml:"base_url"`
	Timeout           time.Duration  `yaml:"timeout"`
	TranscribeTimeout time.Duration  `yaml:"transcribe_timeout"`
	LogLevel          string         `yaml:"log_level"`
	RateLimit         float64        `yaml:"rate_limit"`
	RateBurst         int            `yaml:"rate_burst"`
	Session           SessionOptions `yaml:"session"`
	TLS               TLSOptions     `yaml:"tls"`
	Fake              FakeOptions    `yaml:"fake"`
	// MetricsFile receives the client metrics in the Prometheus text
	// format when the CLI exits.
	MetricsFile string `yaml:"metrics_file"`

	// Config is the path of the configuration file.
	Config string `yaml:"-"`
	// EnvFile is the dotenv file loaded before the environment is read.
	EnvFile string `yaml:"-"`
	// Command is the -cmd flag of the CLI.
	Command string `yaml:"-"`
	// Args are the positional arguments left after the flags.
	Args []string `yaml:"-"`
}

func defaults() *Options {
	return &Options{
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		TranscribeTimeout: DefaultTranscribe,
		LogLevel:          DefaultLogLevel,
		RateBurst:         1,
		Session: SessionOptions{
			Backend: BackendFile,
		},
		Fake: FakeOptions{
			Addr: DefaultFakeAddr,
		},
	}
}

func newFlagSet(name string, o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&o.Config, "config", DefaultConfigFile, "path to config file")
	fs.StringVar(&o.Config, "c", DefaultConfigFile, "path to config file (shorthand)")
	fs.StringVar(&o.BaseURL, "base-url", o.BaseURL, "backend base URL")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "per-request timeout, 0 disables")
	fs.DurationVar(&o.TranscribeTimeout, "transcribe-timeout", o.TranscribeTimeout, "speech upload timeout")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level")
	fs.Float64Var(&o.RateLimit, "rate-limit", o.RateLimit, "max requests per second, 0 disables")
	fs.IntVar(&o.RateBurst, "rate-burst", o.RateBurst, "request burst allowed by the rate limit")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile, "write client metrics to this file on exit")
	fs.StringVar(&o.Session.Backend, "session", o.Session.Backend, "session backend: memory, file, sqlite, postgres, pgx")
	fs.StringVar(&o.Session.Path, "session-path", o.Session.Path, "session file path")
	fs.StringVar(&o.Session.DSN, "d", o.Session.DSN, "session database DSN")
	fs.StringVar(&o.Session.KeyFile, "session-key", o.Session.KeyFile, "file with the session sealing key")
	fs.StringVar(&o.TLS.CAFile, "ca", o.TLS.CAFile, "extra CA certificate (PEM)")
	fs.StringVar(&o.TLS.CertFile, "cert", o.TLS.CertFile, "client certificate (PEM)")
	fs.StringVar(&o.TLS.KeyFile, "key", o.TLS.KeyFile, "client key (PEM)")
	fs.StringVar(&o.Fake.Addr, "a", o.Fake.Addr, "fixture backend ip:port")
	fs.StringVar(&o.EnvFile, "env-file", DefaultEnvFile, "dotenv file, ignored when missing")
	fs.StringVar(&o.Command, "cmd", "", "command to run")
	return fs
}

// Parse reads args (without the program name), the config file and the
// environment. Explicit flags win over the file; the environment wins over
// both.
func Parse(args []string) (*Options, error) {
	o := defaults()
	fs := newFlagSet("gramudyog", o)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicit := fs.Lookup("config").Value.String() != DefaultConfigFile ||
		fs.Lookup("c").Value.String() != DefaultConfigFile
	if p := os.Getenv(EnvConfig); p != "" {
		o.Config = p
		explicit = true
	}
	if err := o.load(explicit); err != nil {
		return nil, err
	}
	// Re-apply explicit flags over the file.
	config := o.Config
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.Config = config

	if err := loadDotenv(o.EnvFile); err != nil {
		return nil, err
	}
	o.applyEnv()
	o.Args = fs.Args()
	return o, nil
}

func (o *Options) load(explicit bool) error {
	if o.Config == "" {
		return nil
	}
	data, err := os.ReadFile(o.Config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("error while reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}

// loadDotenv exports the variables of path that are not already set.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error while reading env file: %w", err)
	}
	return nil
}

func (o *Options) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		o.BaseURL = v
	} else if v := os.Getenv(EnvBaseURLFallback); v != "" {
		o.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		o.LogLevel = v
	}
	if v := os.Getenv(EnvSessionPassphrase); v != "" {
		o.Session.Passphrase = v
	}
	if v := os.Getenv(EnvFakeAddr); v != "" {
		o.Fake.Addr = v
	}
	if v := os.Getenv(EnvFakeSecret); v != "" {
		o.Fake.Secret = v
	}
}

// Validate rejects settings the client cannot run with.
func (o *Options) Validate() error {
	var errs []error

	u, err := url.Parse(o.BaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("base_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, errors.New("base_url: missing host"))
	}

	if o.Timeout < 0 {
		errs = append(errs, errors.New("timeout: must not be negative"))
	}
	if o.TranscribeTimeout < 0 {
		errs = append(errs, errors.New("transcribe_timeout: must not be negative"))
	}
	if o.RateLimit < 0 {
		errs = append(errs, errors.New("rate_limit: must not be negative"))
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(o.LogLevel))); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	switch o.Session.Backend {
	case BackendMemory, BackendFile:
	case BackendSQLite, BackendPostgres, BackendPGX:
		if o.Session.DSN == "" {
			errs = append(errs, fmt.Errorf("session.dsn: required by the %s backend", o.Session.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("session.backend: unknown backend %q", o.Session.Backend))
	}
	if o.Session.KeyFile != "" && o.Session.Passphrase != "" {
		errs = append(errs, errors.New("session: key_file and passphrase are mutually exclusive"))
	}

	if (o.TLS.CertFile == "") != (o.TLS.KeyFile == "") {
		errs = append(errs, errors.New("tls: cert_file and key_file must be set together"))
	}

	return errors.Join(errs...)
}
