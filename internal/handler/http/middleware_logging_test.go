package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithLogger attaches a buffer-backed logger to the request context
// the same way withTraceID does.
func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
		want   []string
	}{
		{
			name:   "accepted submit",
			method: http.MethodPost,
			path:   "/api/register/submit",
			status: http.StatusOK,
			body:   `{"state":"accepted"}`,
			want:   []string{`"method":"POST"`, `"uri":"/api/register/submit"`, `"status":200`, `"size":20`, `"duration":`},
		},
		{
			name:   "rejected submit",
			method: http.MethodPost,
			path:   "/api/register/submit",
			status: http.StatusUnprocessableEntity,
			want:   []string{`"status":422`, `"size":0`},
		},
		{
			name:   "page with query",
			method: http.MethodGet,
			path:   "/?lang=en",
			status: http.StatusOK,
			body:   "<html></html>",
			want:   []string{`"method":"GET"`, `"uri":"/?lang=en"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})
			rec := httptest.NewRecorder()

			withLogging(next).ServeHTTP(rec, requestWithLogger(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 1024)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
