// Package config holds the host monitor's settings, stored as YAML next to
// the binary or wherever -c points.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SerialConfig is the connection to the instrument's telemetry port.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// MockConfig tunes the synthetic instrument used when no hardware is
// attached. Drain and recover rates apply once per emitted sample.
type MockConfig struct {
	TargetMilliAmps int           `yaml:"target_milliamps"`
	StartVolts      float64       `yaml:"start_volts"`
	MinVolts        float64       `yaml:"min_volts"`
	DrainVolts      float64       `yaml:"drain_volts"`
	RecoverVolts    float64       `yaml:"recover_volts"`
	SampleRate      time.Duration `yaml:"sample_rate"`
}

// RecordConfig configures capture output.
type RecordConfig struct {
	Path string `yaml:"path"`
}

type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Mock   MockConfig   `yaml:"mock"`
	Record RecordConfig `yaml:"record"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyACM0",
			Baud: 115200,
		},
		Mock: MockConfig{
			TargetMilliAmps: 1500,
			StartVolts:      12.6,
			MinVolts:        11.0,
			DrainVolts:      0.02,
			RecoverVolts:    0.05,
			SampleRate:      time.Second,
		},
		Record: RecordConfig{
			Path: "dcload.csv",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults;
// a present file is backfilled field by field so partial configs work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ensureDefaults()
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) ensureDefaults() {
	def := Default()
	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud <= 0 {
		c.Serial.Baud = def.Serial.Baud
	}
	if c.Mock.TargetMilliAmps <= 0 {
		c.Mock.TargetMilliAmps = def.Mock.TargetMilliAmps
	}
	if c.Mock.StartVolts <= 0 {
		c.Mock.StartVolts = def.Mock.StartVolts
	}
	if c.Mock.MinVolts <= 0 {
		c.Mock.MinVolts = def.Mock.MinVolts
	}
	if c.Mock.DrainVolts <= 0 {
		c.Mock.DrainVolts = def.Mock.DrainVolts
	}
	if c.Mock.RecoverVolts <= 0 {
		c.Mock.RecoverVolts = def.Mock.RecoverVolts
	}
	if c.Mock.SampleRate <= 0 {
		c.Mock.SampleRate = def.Mock.SampleRate
	}
	if c.Record.Path == "" {
		c.Record.Path = def.Record.Path
	}
}
