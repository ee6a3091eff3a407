package monitor

import (
	"bufio"
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/itohio/dcload/telemetry"
)

// Serial reads telemetry lines from the instrument's serial port.
type Serial struct {
	portName string
	baud     int

	mu        sync.RWMutex
	port      serial.Port
	samples   chan Sample
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// NewSerial prepares a client for the given port. Non-positive baud or
// buffer sizes fall back to the defaults.
func NewSerial(portName string, baud, buffer int) *Serial {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Serial{
		portName: portName,
		baud:     baud,
		samples:  make(chan Sample, buffer),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Connect opens the port and starts the reader. The samples channel closes
// when the reader stops, after Close or on port loss.
func (s *Serial) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return fmt.Errorf("already connected to %s", s.portName)
	}

	port, err := serial.Open(s.portName, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return fmt.Errorf("open %s: %w", s.portName, err)
	}

	s.port = port
	s.connected = true
	go s.readSamples()
	return nil
}

// readSamples pumps parsed lines into the channel until the context is
// cancelled or the port drops. The stream may begin mid-line and carries
// boot noise; malformed lines are skipped.
func (s *Serial) readSamples() {
	defer close(s.samples)

	scanner := bufio.NewScanner(s.port)
	for scanner.Scan() {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		rec, err := telemetry.Parse(scanner.Text())
		if err != nil {
			continue
		}

		select {
		case s.samples <- Sample{At: time.Now(), Record: rec}:
		case <-s.ctx.Done():
			return
		default:
			// drop when the consumer falls behind
		}
	}
}

// Close stops the reader and releases the port.
func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return nil
	}

	s.cancel()
	err := s.port.Close()
	s.connected = false
	return err
}

// Samples returns the sample channel.
func (s *Serial) Samples() <-chan Sample {
	return s.samples
}

// IsConnected reports whether the port is open.
func (s *Serial) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Ports lists the serial ports present on the system.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
