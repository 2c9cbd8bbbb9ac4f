// Package timeouts defines shared timeout constants used across the service.
// Centralizing these values prevents drift between entry points and makes the
// durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// MailSend caps the time spent talking to the SMTP relay during a
// contact-form submission. The send blocks the request, so the cap keeps a
// slow relay from pinning the connection indefinitely.
const MailSend = 15 * time.Second
