package browser

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// requestIDTransport stamps every outgoing request with a fresh
// X-Request-ID so client and backend logs can be correlated.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// wrapTransportWithRequestID wraps the HTTP client's transport so the
// request-id header is added to all requests.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: baseTransport}
}

// debugTransport logs full request/response dumps for troubleshooting API
// communication problems. Enabled via WithDebugLogging or the environment
// (ARCHIVE_DEBUG=true or DEBUG=true); dumps include bodies, so keep it off
// outside development.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// ARCHIVE_DEBUG targets this SDK specifically; DEBUG is the general flag
// common in development workflows. Both must be exactly "true".
func debugLoggingRequested() bool {
	return os.Getenv("ARCHIVE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
