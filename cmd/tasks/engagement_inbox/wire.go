//go:build wireinject
// +build wireinject

package main

import (
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireInbox 装配事件消费任务的依赖。
func wireInbox(bc *conf.Bootstrap, logger log.Logger) (*services.InboxService, func(), error) {
	panic(wire.Build(
		conf.ProviderSet,
		repositories.ProviderSet,
		services.ProviderSet,
		wire.Bind(new(services.PostProjectionWriter), new(*repositories.PostProjectionRepository)),
		wire.Bind(new(services.ReputationWriter), new(*repositories.UserGraphRepository)),
		wire.Bind(new(services.InboxStore), new(*repositories.FeedInboxRepository)),
	))
}
