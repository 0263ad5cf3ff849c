package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Web     WebConfig     `yaml:"web"`
	Booking BookingConfig `yaml:"booking"`
	Contact ContactConfig `yaml:"contact"`
}

type WebConfig struct {
	Host                     string `yaml:"host"`
	Port                     string `yaml:"port"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	LivenessEndpoint         string `yaml:"liveness_endpoint"`
}

type BookingConfig struct {
	ReferencePrefix   string `yaml:"reference_prefix"`
	ProcessingDelayMS int    `yaml:"processing_delay_ms"`
}

type ContactConfig struct {
	ProcessingDelayMS int `yaml:"processing_delay_ms"`
}

func Default() *Config {
	return &Config{
		Web: WebConfig{
			Host:                     "localhost",
			Port:                     "8092",
			ReadHeaderTimeoutSeconds: 20, //nolint:gomnd
			LivenessEndpoint:         "/liveness",
		},
		Booking: BookingConfig{
			ReferencePrefix:   "GRD",
			ProcessingDelayMS: 1500, //nolint:gomnd
		},
		Contact: ContactConfig{
			ProcessingDelayMS: 1500, //nolint:gomnd
		},
	}
}

// Load reads a YAML config from path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	conf := Default()

	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return conf, nil
}

func (b BookingConfig) ProcessingDelay() time.Duration {
	return time.Duration(b.ProcessingDelayMS) * time.Millisecond
}

func (c ContactConfig) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingDelayMS) * time.Millisecond
}
