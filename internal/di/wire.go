//go:build wireinject
// +build wireinject

package di

import (
	"RegimeCast/pkg/config"
	"RegimeCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure clients
		ProvideKafkaProducer,
		ProvideClickHouseClient,
		ProvideLogger,

		// Data source + engine
		ProvidePriceSource,
		ProvideRouter,
		ProvideEngine,

		// Use case + boundary
		ProvideOrchestrator,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
