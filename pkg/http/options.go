// Package http builds outbound HTTP clients from functional options and
// round-tripper decorators.
package http

import "time"

type HttpOpts func(*clientConfig)

// Timeouts

func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.requestTimeout = timeout }
}

func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.connClientTimeout = timeout }
}

func WithTLSHandshakeTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.tlsHandshakeTimeout = timeout }
}

// WithResponseHeaderTimeout bounds the wait for the first response byte.
// Non-streaming model calls send nothing until the answer is complete, so keep it generous.
func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.responseHeaderTimeout = timeout }
}

// Connection pool

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(c *clientConfig) { c.clientKeepAlive = keepAlive }
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.idleConnTimeout = timeout }
}

func WithMaxIdleConns(maxConns int) HttpOpts {
	return func(c *clientConfig) { c.maxIdleConns = maxConns }
}

func WithMaxIdleConnsPerHost(maxConns int) HttpOpts {
	return func(c *clientConfig) { c.maxIdleConnsPerHost = maxConns }
}

// TLS

func WithInsecureSkipVerify(skip bool) HttpOpts {
	return func(c *clientConfig) { c.insecureSkipVerify = skip }
}

// WithTransport wraps the transport. Decorators apply in the order given,
// so the last one added runs first.
func WithTransport(transport TransportFunc) HttpOpts {
	return func(c *clientConfig) { c.decorators = append(c.decorators, transport) }
}
