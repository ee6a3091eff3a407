package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itohio/dcload/pkg/config"
	"github.com/itohio/dcload/telemetry"
)

// Mock synthesizes a plausible bench session without hardware: the source
// sags under load until it crosses the minimum-voltage threshold, the
// protection latch trips, the source recovers past the margin, and the
// cycle repeats. Useful for exercising the CLI and captures offline.
type Mock struct {
	cfg config.MockConfig

	mu        sync.RWMutex
	samples   chan Sample
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	// simulation state, owned by the run goroutine
	volts     float64
	latched   bool
	mosfetC   float64
	resistorC float64
}

// NewMock creates a mock instrument. A nil cfg uses the defaults.
func NewMock(cfg *config.MockConfig) *Mock {
	if cfg == nil {
		def := config.Default()
		cfg = &def.Mock
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Mock{
		cfg:     *cfg,
		samples: make(chan Sample, DefaultBufferSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Connect starts the sample generator.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	m.connected = true
	m.volts = m.cfg.StartVolts
	m.latched = false
	m.mosfetC = 25
	m.resistorC = 25

	go m.run()
	return nil
}

// Close stops the generator; the samples channel closes once it exits.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	m.connected = false
	return nil
}

// Samples returns the sample channel.
func (m *Mock) Samples() <-chan Sample {
	return m.samples
}

// IsConnected reports whether the generator is running.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

func (m *Mock) run() {
	defer close(m.samples)

	ticker := time.NewTicker(m.cfg.SampleRate)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
		}

		select {
		case m.samples <- m.generate():
		case <-m.ctx.Done():
			return
		}
	}
}

// generate advances the simulated session by one sample, mirroring the
// firmware's hysteresis: trip below the threshold, release only past the
// 0.1 V margin.
func (m *Mock) generate() Sample {
	if m.latched {
		m.volts += m.cfg.RecoverVolts
		if m.volts > m.cfg.MinVolts+0.1 {
			m.latched = false
		}
	} else {
		m.volts -= m.cfg.DrainVolts
		if m.volts < m.cfg.MinVolts {
			m.latched = true
		}
	}

	var milliAmps float64
	if !m.latched {
		milliAmps = float64(m.cfg.TargetMilliAmps)
	}
	watts := m.volts * milliAmps / 1000

	// first-order lag toward a dissipation-dependent steady state
	m.mosfetC += (25 + watts*2 - m.mosfetC) * 0.1
	m.resistorC += (25 + watts*3 - m.resistorC) * 0.05

	return Sample{
		At: time.Now(),
		Record: telemetry.Record{
			TargetMilliAmps: int32(m.cfg.TargetMilliAmps),
			MilliAmps:       float32(milliAmps),
			MinVolts:        float32(m.cfg.MinVolts),
			Volts:           float32(m.volts),
			Watts:           float32(watts),
			MosfetTempC:     float32(m.mosfetC),
			ResistorTempC:   float32(m.resistorC),
			LoadEnabled:     !m.latched,
		},
	}
}
