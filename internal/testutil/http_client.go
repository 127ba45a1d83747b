// Package testutil holds helpers shared by the HTTP tests of several
// packages. Nothing outside _test.go files imports it.
package testutil

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultClientTimeout bounds every request of an [HTTPClient].
const DefaultClientTimeout = 10 * time.Second

// HTTPClient embeds *resty.Client, so the whole resty API is available.
//
//	client := testutil.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetResult(&out).Get("/api/version/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. The transport negotiates
// gzip on its own. An empty baseURL leaves request URLs absolute.
func NewHTTPClient(baseURL string) *HTTPClient {
	c := resty.New().
		SetTimeout(DefaultClientTimeout).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	return &HTTPClient{Client: c}
}
