// Package monitor consumes the instrument's telemetry stream on the host:
// a serial client for real hardware and a mock that synthesizes a
// discharge session for development without a bench.
package monitor

import (
	"time"

	"github.com/itohio/dcload/telemetry"
)

const (
	DefaultBaudRate   = 115200
	DefaultBufferSize = 64
)

// Sample is one telemetry record stamped at the time it arrived on the
// host. The instrument itself does not timestamp.
type Sample struct {
	At time.Time
	telemetry.Record
}

// Instrument is a telemetry source, real or mocked.
type Instrument interface {
	Connect() error
	Close() error
	Samples() <-chan Sample
	IsConnected() bool
}

var (
	_ Instrument = (*Serial)(nil)
	_ Instrument = (*Mock)(nil)
)
