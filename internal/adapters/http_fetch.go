package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"gwspec/internal/shared"
)

// maxErrorBodyLen caps how much of a failed response is quoted in errors.
const maxErrorBodyLen = 512

// httpGet performs a single GET with the given timeout and returns the body.
// Transport errors are returned unwrapped; non-2xx statuses become a status
// error quoting the start of the body. Nothing is retried, and the
// connection is not kept after the call returns.
func httpGet(ctx context.Context, url string, timeout time.Duration, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	defer transport.CloseIdleConnections()
	client := &http.Client{Timeout: timeout, Transport: transport}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := strings.TrimSpace(string(body))
		if text == "" {
			return nil, shared.HTTPStatusError(resp.StatusCode, url)
		}
		if len(text) > maxErrorBodyLen {
			text = text[:maxErrorBodyLen] + "..."
		}
		return nil, shared.HTTPStatusErrorWithBody(resp.StatusCode, url, text)
	}
	return body, nil
}
