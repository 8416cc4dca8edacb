package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// TransportFunc decorates a round tripper
type TransportFunc func(http.RoundTripper) http.RoundTripper

type clientConfig struct {
	// dial and request
	connClientTimeout     time.Duration
	requestTimeout        time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration

	// pool
	clientKeepAlive     time.Duration
	idleConnTimeout     time.Duration
	maxIdleConns        int
	maxIdleConnsPerHost int

	insecureSkipVerify bool
	decorators         []TransportFunc
}

var defaults = clientConfig{
	connClientTimeout:     30 * time.Second,
	requestTimeout:        30 * time.Second,
	tlsHandshakeTimeout:   10 * time.Second,
	responseHeaderTimeout: 10 * time.Second,
	clientKeepAlive:       90 * time.Second,
	idleConnTimeout:       90 * time.Second,
	maxIdleConns:          100,
	maxIdleConnsPerHost:   10,
}

// NewClient builds an *http.Client tuned by opts. Without decorators the
// transport is a plain *http.Transport.
func NewClient(opts ...HttpOpts) *http.Client {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}

	var rt http.RoundTripper = newTransport(&cfg)
	for _, decorate := range cfg.decorators {
		rt = decorate(rt)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: rt,
	}
}

func newTransport(cfg *clientConfig) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   cfg.connClientTimeout,
		KeepAlive: cfg.clientKeepAlive,
	}

	t := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          cfg.maxIdleConns,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   cfg.tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}
	if cfg.insecureSkipVerify {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return t
}
