package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientAppliesTimeout(t *testing.T) {
	client := NewClient(WithRequestTimeout(3 * time.Second))
	assert.Equal(t, 3*time.Second, client.Timeout)
}

func TestAuthTokenTransportSetsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(WithRequestLogging(), WithAuthToken("secret"))
	resp, err := client.Get(srv.URL + "/path?key=abc")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestAuthTokenTransportSkipsEmptyToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	resp, err := NewClient(WithAuthToken("")).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestRedactedURLDropsQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.com/v1/models?key=secret", nil)
	assert.Equal(t, "https://example.com/v1/models", redactedURL(req))
}

func TestHeaderTransportKeepsCallerHeader(t *testing.T) {
	var gotAuth, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer from-sdk")

	resp, err := NewClient(WithAuthToken("secret"), WithUserAgent("drive-consult")).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer from-sdk", gotAuth)
	assert.Equal(t, "drive-consult", gotUA)
}

func TestNewClientTransportSettings(t *testing.T) {
	client := NewClient(
		WithTLSHandshakeTimeout(2*time.Second),
		WithMaxIdleConns(7),
		WithMaxIdleConnsPerHost(3),
		WithInsecureSkipVerify(true),
	)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, transport.TLSHandshakeTimeout)
	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 3, transport.MaxIdleConnsPerHost)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	assert.Equal(t, 30*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 100, transport.MaxIdleConns)
	assert.Nil(t, transport.TLSClientConfig)

	// options on one client must not leak into the next
	NewClient(WithRequestTimeout(time.Second), WithTransport(func(rt http.RoundTripper) http.RoundTripper { return rt }))
	assert.Equal(t, 30*time.Second, NewClient().Timeout)
}
