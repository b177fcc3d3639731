package config

import "context"

// Loader specifies how to load the faucet catalog
type Loader interface {
	Load(ctx context.Context) (*Config, error)
}
