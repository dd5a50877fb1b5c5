package ports

import (
	"context"
	"time"
)

// Auth audit event kinds.
const (
	AuthEventLoginOK     = "login_ok"
	AuthEventLoginFailed = "login_failed"
	AuthEventThrottled   = "login_throttled"
)

// AuthEventInput is one entry of the authentication audit trail. Reason is
// a coarse label ("bad_password", "unknown_email"); it never carries the
// plaintext password or the token.
type AuthEventInput struct {
	Email     string
	AccountID string
	Kind      string
	Reason    string
	At        time.Time
}

// AuthEventSink accepts audit events for asynchronous recording. Enqueue
// must not block the login path.
type AuthEventSink interface {
	Enqueue(event AuthEventInput)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, event AuthEventInput) error
}
