package notifications

import (
	"context"

	"github.com/9ssi7/exponent"
)

// PushSender is the subset of the Expo client used for admin pushes.
type PushSender interface {
	Publish(ctx context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error)
}
