package notification

import "context"

// Bus delivers asynchronous events to a recipient's identity channel.
// Delivery is at-most-once and best-effort; no acknowledgment is
// awaited, and callers must not fail their own operation when a publish
// fails.
type Bus interface {
	Publish(ctx context.Context, recipientID, event string, payload any) error
	Close() error
}
