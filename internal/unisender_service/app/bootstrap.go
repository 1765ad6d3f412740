package app

import (
	"fmt"
	"log/slog"

	"github.com/aradsms/unisender_services/internal/platform/config"
	"github.com/aradsms/unisender_services/internal/unisender_service/adapters/unisenderapi"
	"github.com/aradsms/unisender_services/internal/unisender_service/provider"
)

// SettingsFromConfig maps the service configuration onto transport settings.
func SettingsFromConfig(cfg *config.Config) provider.Settings {
	return provider.Settings{
		APIKey:      cfg.APIKey,
		Encoding:    cfg.Encoding,
		RetryCount:  cfg.RetryCount,
		RetryWait:   cfg.RetryWait(),
		Timeout:     cfg.Timeout(),
		Compression: cfg.Compression,
		Platform:    cfg.Platform,
		Lang:        cfg.Lang,
		APIHost:     cfg.APIHost,
	}
}

// NewTransport builds the transport selected by cfg.Transport.
func NewTransport(cfg *config.Config, logger *slog.Logger) (unisenderapi.Transport, error) {
	switch cfg.Transport {
	case "mock":
		return provider.NewMockTransport(logger, false, 0), nil
	case "http", "":
		t, err := provider.NewHTTPTransport(logger, SettingsFromConfig(cfg), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create http transport: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", config.ErrInvalidConfig, cfg.Transport)
	}
}

// NewGatewayClientFromConfig wires a GatewayClient the way both binaries need it.
func NewGatewayClientFromConfig(cfg *config.Config, logger *slog.Logger) (*GatewayClient, error) {
	transport, err := NewTransport(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewGatewayClient(transport, logger), nil
}
