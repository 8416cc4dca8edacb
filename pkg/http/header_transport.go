package http

import "net/http"

// headerTransport sets a header on every outgoing request, unless the caller already did
type headerTransport struct {
	key       string
	value     string
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.value == "" || req.Header.Get(t.key) != "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set(t.key, t.value)

	return t.transport.RoundTrip(reqCopy)
}

func withHeader(key, value string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			key:       key,
			value:     value,
			transport: rt,
		}
	})
}

// WithAuthToken sends a bearer token. SDKs that set Authorization themselves win.
func WithAuthToken(token string) HttpOpts {
	if token == "" {
		return withHeader("Authorization", "")
	}
	return withHeader("Authorization", "Bearer "+token)
}

func WithUserAgent(userAgent string) HttpOpts {
	return withHeader("User-Agent", userAgent)
}
