package ports

import "go.trai.ch/tscache/internal/core/domain"

// ConfigLoader defines the interface for loading the tscache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration of the project rooted at root.
	// A missing config file yields the defaults.
	Load(root string) (*domain.Config, error)
}
