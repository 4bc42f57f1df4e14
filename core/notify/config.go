package notify

import "time"

// Config holds configuration for report delivery.
type Config struct {
	// Driver selects the sink: storage or log.
	Driver string `mapstructure:"driver" default:"storage"`
	// Prefix is the object key prefix used by the storage sink.
	Prefix string `mapstructure:"prefix" default:"reports"`
	// TimeoutSeconds bounds a single delivery attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

const (
	DriverStorage = "storage"
	DriverLog     = "log"
)

// Timeout returns the delivery bound, falling back to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
