// ABOUTME: DeploymentConfig is the on-disk/env-facing configuration schema for a pool (spec's config schema, §6).
// ABOUTME: ToPoolConfig converts it into a pkg/pool.Config once timeouts/queue_mode have been parsed and validated.
package poolconfig

import (
	"fmt"
	"time"

	"github.com/lexlapax/go-respool/pkg/pool"
)

// DeploymentConfig is the layered, serializable configuration for a single
// pool deployment: how large it may grow, how long its suspension points
// may block, and in what order idle resources are handed back out.
type DeploymentConfig struct {
	MaxSize   int             `yaml:"max_size"`
	QueueMode string          `yaml:"queue_mode"`
	Timeouts  TimeoutsConfig  `yaml:"timeouts"`
}

// TimeoutsConfig mirrors pool.Timeouts but in a form koanf/YAML/env can
// populate: each field is a Go duration string ("30s", "500ms"), empty
// meaning "unbounded".
type TimeoutsConfig struct {
	Wait    string `yaml:"wait"`
	Create  string `yaml:"create"`
	Recycle string `yaml:"recycle"`
}

// DefaultDeploymentConfig mirrors pool.DefaultConfig in the serializable shape.
func DefaultDeploymentConfig() DeploymentConfig {
	return DeploymentConfig{
		MaxSize:   pool.DefaultMaxSize(),
		QueueMode: "fifo",
	}
}

// Validate checks the configuration is structurally sound (parseable
// durations, a recognized queue mode, a positive size).
func (c DeploymentConfig) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("poolconfig: max_size must be positive, got %d", c.MaxSize)
	}
	switch c.QueueMode {
	case "", "fifo", "lifo":
	default:
		return fmt.Errorf("poolconfig: queue_mode must be %q or %q, got %q", "fifo", "lifo", c.QueueMode)
	}
	for name, s := range map[string]string{"wait": c.Timeouts.Wait, "create": c.Timeouts.Create, "recycle": c.Timeouts.Recycle} {
		if s == "" {
			continue
		}
		if _, err := time.ParseDuration(s); err != nil {
			return fmt.Errorf("poolconfig: timeouts.%s: %w", name, err)
		}
	}
	return nil
}

// ToPoolConfig converts a validated DeploymentConfig into a pool.Config.
func (c DeploymentConfig) ToPoolConfig() (pool.Config, error) {
	if err := c.Validate(); err != nil {
		return pool.Config{}, err
	}
	cfg := pool.Config{MaxSize: c.MaxSize}
	switch c.QueueMode {
	case "lifo":
		cfg.QueueMode = pool.QueueLifo
	default:
		cfg.QueueMode = pool.QueueFifo
	}
	if d, err := parseOptionalDuration(c.Timeouts.Wait); err != nil {
		return pool.Config{}, err
	} else {
		cfg.Timeouts.Wait = d
	}
	if d, err := parseOptionalDuration(c.Timeouts.Create); err != nil {
		return pool.Config{}, err
	} else {
		cfg.Timeouts.Create = d
	}
	if d, err := parseOptionalDuration(c.Timeouts.Recycle); err != nil {
		return pool.Config{}, err
	} else {
		cfg.Timeouts.Recycle = d
	}
	return cfg, nil
}

func parseOptionalDuration(s string) (*time.Duration, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
