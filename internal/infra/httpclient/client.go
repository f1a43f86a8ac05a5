package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/buildinfo"
)

// Config tunes the client used for outbound lookups. Requests go to a single
// public endpoint a few times per session, so the idle pool stays small.
type Config struct {
	// Total timeout for the entire request; a context deadline can still override it.
	Timeout time.Duration

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
	MaxIdleConns    int

	// UserAgent is sent on every request unless the request sets its own.
	UserAgent string
}

func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DialTimeout:     3 * time.Second,
		TLSHandshake:    3 * time.Second,
		ResponseHeader:  5 * time.Second,
		IdleConnTimeout: 30 * time.Second,
		MaxIdleConns:    2,
		UserAgent:       "clubctl/" + buildinfo.Version,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	var rt http.RoundTripper = tr
	if cfg.UserAgent != "" {
		rt = userAgent{next: tr, value: cfg.UserAgent}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}

type userAgent struct {
	next  http.RoundTripper
	value string
}

func (u userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", u.value)
	return u.next.RoundTrip(r)
}
