//go:build wireinject
// +build wireinject

package main

import (
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/controllers"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/server"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp 装配 HTTP 服务的全部依赖。
func wireApp(bc *conf.Bootstrap, logger log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		conf.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		wire.Bind(new(services.PostProjectionStore), new(*repositories.PostProjectionRepository)),
		wire.Bind(new(services.UserGraphStore), new(*repositories.UserGraphRepository)),
		wire.Bind(new(services.FeedLogStore), new(*repositories.FeedLogRepository)),
		newApp,
	))
}
