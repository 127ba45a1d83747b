// Package http serves the registration form over HTTP.
//
// GET / renders the form page with the remembered username pre-filled. The
// page script forwards blur, input and submit events to the /api/register
// endpoints; each request runs one event through a fresh form controller
// whose cookie jar is the request's Cookie header and the response's
// Set-Cookie headers. Tracing, access logging and gzip are applied as
// middleware before a handler runs.
package http
