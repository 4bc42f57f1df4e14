package notify

import (
	"context"
	"fmt"

	"asset-audit/core/storage"

	"go.uber.org/zap"
)

// Sink accepts a rendered message for delivery.
type Sink interface {
	Send(ctx context.Context, recipients []string, subject, body string) error
}

// NewSink builds the sink selected by cfg.Driver.
func NewSink(cfg Config, client storage.Client, bucket string, logger *zap.Logger) (Sink, error) {
	switch cfg.Driver {
	case DriverStorage, "":
		if client == nil {
			return nil, fmt.Errorf("storage sink requires a storage client")
		}
		return NewStorageSink(client, bucket, cfg.Prefix), nil
	case DriverLog:
		return NewLogSink(logger), nil
	default:
		return nil, fmt.Errorf("unknown notify driver: %s", cfg.Driver)
	}
}
