package notification

import "context"

// NoopBus drops every event. Used when the broker is unreachable at
// startup so the booking core keeps serving; clients fall back to the
// query path.
type NoopBus struct{}

func (NoopBus) Publish(ctx context.Context, recipientID, event string, payload any) error {
	return nil
}

func (NoopBus) Close() error { return nil }
