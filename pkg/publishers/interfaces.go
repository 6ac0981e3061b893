package publishers

import (
	"context"

	"github.com/samvad-hq/ninja-client/internal/logger"
)

// Publisher sends events to a downstream sink (SQS, SNS, Pub/Sub, HTTP).
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}

// Logger is the logging surface publishers rely on.
type Logger = logger.Logger

// closer is implemented by publishers holding client resources.
type closer interface {
	Close() error
}
