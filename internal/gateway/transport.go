package gateway

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// loggingRoundTripper emits one debug line per request and response.
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger *log.Logger
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	t.logger.Debug("github api request", "method", req.Method, "url", req.URL.String())
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start).Truncate(time.Millisecond)
	if err != nil {
		t.logger.Debug("github api error", "after", dur, "err", err)
		return nil, err
	}
	t.logger.Debug("github api response", "status", resp.StatusCode, "took", dur)
	return resp, nil
}
