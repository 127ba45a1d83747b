package http

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/MKhiriev/go-register-form/internal/cookies"
)

// requestJar is the [cookies.Jar] of one HTTP exchange. Reads see the
// request's Cookie header plus anything written during the request; writes
// are sent back as Set-Cookie headers by flush.
type requestJar struct {
	enabled  bool
	incoming []*http.Cookie
	pending  []*http.Cookie
	now      func() time.Time
}

var _ cookies.Jar = (*requestJar)(nil)

func newRequestJar(r *http.Request, enabled bool) *requestJar {
	return &requestJar{
		enabled:  enabled,
		incoming: r.Cookies(),
		now:      time.Now,
	}
}

func (j *requestJar) Enabled() bool {
	return j.enabled
}

// Read returns the cookie string a page script would see. A host with cookies
// disabled sees an empty string.
func (j *requestJar) Read(_ context.Context) (string, error) {
	if !j.enabled {
		return "", nil
	}

	live := make([]cookies.Cookie, 0, len(j.incoming)+len(j.pending))
	for _, c := range j.incoming {
		live = append(live, cookies.Cookie{Name: c.Name, Value: c.Value})
	}
	for _, c := range j.pending {
		idx := slices.IndexFunc(live, func(l cookies.Cookie) bool { return l.Name == c.Name })
		switch {
		case c.MaxAge < 0 && idx >= 0:
			live = slices.Delete(live, idx, idx+1)
		case c.MaxAge < 0:
		case idx >= 0:
			live[idx].Value = c.Value
		default:
			live = append(live, cookies.Cookie{Name: c.Name, Value: c.Value})
		}
	}

	return cookies.Join(live), nil
}

// Write queues a Set-Cookie header. An expired line queues a deletion.
func (j *requestJar) Write(_ context.Context, line string) error {
	c, err := cookies.ParseLine(line)
	if err != nil {
		return err
	}

	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Expires:  c.Expires,
		SameSite: http.SameSiteLaxMode,
	}
	if hc.Path == "" {
		hc.Path = cookies.RootPath
	}
	if c.Expired(j.now()) {
		hc.Value = ""
		hc.Expires = time.Unix(0, 0)
		hc.MaxAge = -1
	}

	j.pending = slices.DeleteFunc(j.pending, func(p *http.Cookie) bool { return p.Name == hc.Name })
	j.pending = append(j.pending, hc)
	return nil
}

// flush writes queued cookies to the response. It must run before the
// status line is written.
func (j *requestJar) flush(w http.ResponseWriter) {
	for _, c := range j.pending {
		http.SetCookie(w, c)
	}
}
