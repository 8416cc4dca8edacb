package common

import (
	"net/http"

	"github.com/futig/drive-consult/internal/config"
	pkgHTTP "github.com/futig/drive-consult/pkg/http"
)

const userAgent = "drive-consult"

// NewHTTPClient builds the outbound client shared by the HTTP based model connectors
func NewHTTPClient(cfg config.HTTPClientConfig) *http.Client {
	return pkgHTTP.NewClient(
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithTLSHandshakeTimeout(cfg.TLSHandshakeTimeout),
		pkgHTTP.WithMaxIdleConns(cfg.MaxIdleConns),
		pkgHTTP.WithMaxIdleConnsPerHost(cfg.MaxIdleConnsPerHost),
		pkgHTTP.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
		pkgHTTP.WithUserAgent(userAgent),
	)
}
