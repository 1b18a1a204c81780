package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client's token minting settings.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	LogLevel      string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Identity is the caller identity the client acts as.
	Identity int64
}

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig loads the shared configuration sources, keeps the fields
// the client needs and validates them. Backend-only settings are not checked.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			LogLevel:      cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Identity:       cfg.Adapter.Identity,
		},
	}

	return clientCfg, clientCfg.validate()
}
