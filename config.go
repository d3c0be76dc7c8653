package orderedtree

import "fmt"

// Config configures a tree.
type Config struct {
	// MaxDepth is the depth budget of a tree: Add refuses to place a node at
	// a depth greater than MaxDepth, where the root has depth 0.
	// A value of 0 means unlimited.
	MaxDepth int
}

// Option changes the configuration of a tree on creation.
type Option func(*Config)

// WithMaxDepth configures a depth budget. n must not be negative.
func WithMaxDepth(n int) Option {
	return func(cfg *Config) {
		cfg.MaxDepth = n
	}
}

func (cfg Config) normalized() Config {
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: negative depth budget %d", ErrInvalidConfig, cfg.MaxDepth)
	}
	return nil
}

func (cfg Config) exceeds(depth int) bool {
	return cfg.MaxDepth > 0 && depth > cfg.MaxDepth
}
