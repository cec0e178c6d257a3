// Package api is the typed client of the GramUdyog backend. A Client owns
// the HTTP plumbing (auth header, timeouts, error normalization, logging,
// metrics, tracing) and exposes one facade per backend resource.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gramudyogai/gramudyog-go/internal/metrics"
	"github.com/gramudyogai/gramudyog-go/internal/models"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

// Defaults applied by New.
const (
	DefaultBaseURL           = "http://localhost:8000"
	DefaultTimeout           = 30 * time.Second
	DefaultTranscribeTimeout = 10 * time.Second
)

// Doer is the part of *http.Client the executor needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Session is the credential store the client reads the bearer token from
// and writes login results to. *session.Manager implements it.
type Session interface {
	AuthToken(ctx context.Context) (string, error)
	ActorID(ctx context.Context) (int64, error)
	Save(ctx context.Context, tok models.TokenResponse) error
	Clear(ctx context.Context) error
}

// Client talks to one backend. It is safe for concurrent use.
type Client struct {
	baseURL             string
	http                Doer
	session             Session
	log                 *zap.Logger
	timeout             time.Duration
	transcribeTimeout   time.Duration
	metrics             *metrics.Client
	tracer              trace.Tracer
	limiter             *rate.Limiter
	userAgent           string
	clearOnUnauthorized bool

	Auth            *AuthAPI
	Events          *EventAPI
	Projects        *ProjectAPI
	Jobs            *JobAPI
	Users           *UserAPI
	Courses         *CourseAPI
	CSRCourses      *CSRCourseAPI
	VisualSummaries *VisualSummaryAPI
	Notifications   *NotificationAPI
	YoutubeSummary  *YoutubeSummaryAPI
	Stt             *SttAPI
	Assistant       *AssistantAPI
	Schemes         *SchemeAPI
	Translate       *TranslateAPI
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The default is a plain
// *http.Client without its own timeout.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithSession sets the credential store. The default is an in-memory
// session.Manager.
func WithSession(s Session) Option {
	return func(c *Client) { c.session = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout bounds every request that has no earlier deadline. Zero
// disables the default bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithTranscribeTimeout bounds speech-to-text uploads.
func WithTranscribeTimeout(d time.Duration) Option {
	return func(c *Client) { c.transcribeTimeout = d }
}

func WithMetrics(m *metrics.Client) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithRateLimit paces outgoing requests to rps per second with the given
// burst. Requests wait for a slot; nothing is ever re-sent.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithClearOnUnauthorized controls whether a 401 answer to a request that
// carried a token clears the session. It is on by default.
func WithClearOnUnauthorized(on bool) Option {
	return func(c *Client) { c.clearOnUnauthorized = on }
}

// New returns a Client for baseURL ("" means DefaultBaseURL).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:             strings.TrimRight(baseURL, "/"),
		timeout:             DefaultTimeout,
		transcribeTimeout:   DefaultTranscribeTimeout,
		clearOnUnauthorized: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.session == nil {
		c.session = session.NewManager(nil)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer("gramudyog/api")
	}

	c.Auth = &AuthAPI{c: c}
	c.Events = &EventAPI{c: c}
	c.Projects = &ProjectAPI{c: c}
	c.Jobs = &JobAPI{c: c}
	c.Users = &UserAPI{c: c}
	c.Courses = &CourseAPI{c: c}
	c.CSRCourses = &CSRCourseAPI{c: c}
	c.VisualSummaries = &VisualSummaryAPI{c: c}
	c.Notifications = &NotificationAPI{c: c}
	c.YoutubeSummary = &YoutubeSummaryAPI{c: c}
	c.Stt = &SttAPI{c: c}
	c.Assistant = &AssistantAPI{c: c}
	c.Schemes = &SchemeAPI{c: c}
	c.Translate = &TranslateAPI{c: c}
	return c
}

// BaseURL returns the backend root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Session returns the credential store.
func (c *Client) Session() Session { return c.session }
