package cookies

import (
	"context"
	"slices"
	"time"
)

// MemoryJar is an in-process [Jar]. Cookies are kept in creation order and
// dropped once expired. It is not safe for concurrent use; the form runs on
// a single event loop.
type MemoryJar struct {
	enabled bool
	now     func() time.Time
	cookies []Cookie
}

// MemoryJarOption configures a MemoryJar.
type MemoryJarOption func(*MemoryJar)

// WithMemoryClock replaces time.Now.
func WithMemoryClock(now func() time.Time) MemoryJarOption {
	return func(j *MemoryJar) { j.now = now }
}

// WithMemoryDisabled makes the jar report cookies as disabled.
func WithMemoryDisabled() MemoryJarOption {
	return func(j *MemoryJar) { j.enabled = false }
}

// NewMemoryJar returns an empty, enabled jar.
func NewMemoryJar(opts ...MemoryJarOption) *MemoryJar {
	j := &MemoryJar{enabled: true, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *MemoryJar) Enabled() bool {
	return j.enabled
}

// SetEnabled toggles cookie availability at runtime.
func (j *MemoryJar) SetEnabled(enabled bool) {
	j.enabled = enabled
}

func (j *MemoryJar) Read(_ context.Context) (string, error) {
	j.prune()
	return Join(j.cookies), nil
}

func (j *MemoryJar) Write(_ context.Context, line string) error {
	c, err := ParseLine(line)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(j.cookies, func(existing Cookie) bool { return existing.Name == c.Name })
	if c.Expired(j.now()) {
		if idx >= 0 {
			j.cookies = slices.Delete(j.cookies, idx, idx+1)
		}
		return nil
	}

	if idx >= 0 {
		j.cookies[idx] = c
		return nil
	}
	j.cookies = append(j.cookies, c)
	return nil
}

// Cookies returns a copy of the live cookies.
func (j *MemoryJar) Cookies() []Cookie {
	j.prune()
	return slices.Clone(j.cookies)
}

func (j *MemoryJar) prune() {
	now := j.now()
	j.cookies = slices.DeleteFunc(j.cookies, func(c Cookie) bool { return c.Expired(now) })
}
