package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the developer's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvConfig, EnvBaseURL, EnvBaseURLFallback, EnvLogLevel,
		EnvSessionPassphrase, EnvFakeAddr, EnvFakeSecret,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "gramudyog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	o, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, o.BaseURL)
	assert.Equal(t, 30*time.Second, o.Timeout)
	assert.Equal(t, 10*time.Second, o.TranscribeTimeout)
	assert.Equal(t, "info", o.LogLevel)
	assert.Equal(t, BackendFile, o.Session.Backend)
	assert.Equal(t, DefaultFakeAddr, o.Fake.Addr)
	assert.Empty(t, o.Args)
	assert.NoError(t, o.Validate())
}

func TestParse_Flags(t *testing.T) {
	clearEnv(t)

	o, err := Parse([]string{
		"-base-url", "https://api.gramudyog.in",
		"-timeout", "5s",
		"-session", "sqlite",
		"-d", "file:session.db",
		"-rate-limit", "2.5",
		"-metrics-file", "client.prom",
		"-cmd", "jobs",
		"engineer", "pune",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.gramudyog.in", o.BaseURL)
	assert.Equal(t, 5*time.Second, o.Timeout)
	assert.Equal(t, BackendSQLite, o.Session.Backend)
	assert.Equal(t, "file:session.db", o.Session.DSN)
	assert.InDelta(t, 2.5, o.RateLimit, 1e-9)
	assert.Equal(t, "client.prom", o.MetricsFile)
	assert.Equal(t, "jobs", o.Command)
	assert.Equal(t, []string{"engineer", "pune"}, o.Args)
}

func TestParse_FileThenFlagsThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
base_url: http://file.example:8000
timeout: 12s
log_level: debug
session:
  backend: postgres
  dsn: postgres://localhost/gramudyog
tls:
  ca_file: /etc/gramudyog/ca.pem
fake:
  addr: 127.0.0.1:9000
`)

	o, err := Parse([]string{"-c", path, "-timeout", "3s"})
	require.NoError(t, err)
	assert.Equal(t, path, o.Config)
	assert.Equal(t, "http://file.example:8000", o.BaseURL)
	assert.Equal(t, 3*time.Second, o.Timeout, "explicit flag beats the file")
	assert.Equal(t, "debug", o.LogLevel)
	assert.Equal(t, BackendPostgres, o.Session.Backend)
	assert.Equal(t, "postgres://localhost/gramudyog", o.Session.DSN)
	assert.Equal(t, "/etc/gramudyog/ca.pem", o.TLS.CAFile)
	assert.Equal(t, "127.0.0.1:9000", o.Fake.Addr)

	t.Setenv(EnvBaseURL, "http://env.example")
	t.Setenv(EnvFakeAddr, "0.0.0.0:8080")
	o, err = Parse([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", o.BaseURL)
	assert.Equal(t, "0.0.0.0:8080", o.Fake.Addr)
}

func TestParse_JSONFileFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"base_url": "http://json.example", "session": {"backend": "memory"}}`)
	t.Setenv(EnvConfig, path)

	o, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://json.example", o.BaseURL)
	assert.Equal(t, BackendMemory, o.Session.Backend)
}

func TestParse_BaseURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURLFallback, "http://vite.example")

	o, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://vite.example", o.BaseURL)

	t.Setenv(EnvBaseURL, "http://primary.example")
	o, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://primary.example", o.BaseURL)
}

func TestParse_Dotenv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(DefaultEnvFile, []byte("VITE_API_BASE_URL=https://dotenv.example\nGRAMUDYOG_LOG_LEVEL=warn\n"), 0o600))

	o, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://dotenv.example", o.BaseURL)
	assert.Equal(t, "warn", o.LogLevel)
}

func TestParse_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBaseURL, "https://env.example")
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("GRAMUDYOG_API_BASE_URL=https://dotenv.example\n"), 0o600))

	o, err := Parse([]string{"-env-file", path})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", o.BaseURL)

	_, err = Parse([]string{"-env-file", t.TempDir()})
	assert.ErrorContains(t, err, "error while reading env file")
}

func TestParse_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Parse([]string{"-timeout", "soon"})
	assert.Error(t, err)

	_, err = Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	bad := writeConfig(t, "timeout: [1, 2")
	_, err = Parse([]string{"-config", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr string
	}{
		{"defaults", func(*Options) {}, ""},
		{"bad scheme", func(o *Options) { o.BaseURL = "ftp://x" }, "scheme must be http or https"},
		{"no host", func(o *Options) { o.BaseURL = "http://" }, "missing host"},
		{"unparsable", func(o *Options) { o.BaseURL = "http://[::1" }, "base_url"},
		{"negative timeout", func(o *Options) { o.Timeout = -time.Second }, "timeout: must not be negative"},
		{"negative rate", func(o *Options) { o.RateLimit = -1 }, "rate_limit"},
		{"bad level", func(o *Options) { o.LogLevel = "loud" }, "log_level"},
		{"unknown backend", func(o *Options) { o.Session.Backend = "redis" }, `unknown backend "redis"`},
		{"db without dsn", func(o *Options) { o.Session.Backend = BackendPGX }, "required by the pgx backend"},
		{"key and passphrase", func(o *Options) {
			o.Session.KeyFile = "k"
			o.Session.Passphrase = "p"
		}, "mutually exclusive"},
		{"cert without key", func(o *Options) { o.TLS.CertFile = "c.pem" }, "must be set together"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaults()
			tt.mutate(o)
			err := o.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
