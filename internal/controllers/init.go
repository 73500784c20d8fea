// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/services"
	"github.com/google/wire"
)

// ProvideHandlerTimeouts 从服务配置派生 Handler 超时。
func ProvideHandlerTimeouts(c *conf.Server) HandlerTimeouts {
	timeouts := HandlerTimeouts{}
	if c != nil && c.HTTP.TimeoutSeconds > 0 {
		timeouts.Query = time.Duration(c.HTTP.TimeoutSeconds) * time.Second
	}
	return timeouts
}

// ProvideFeedServiceAPI adapts FeedService into FeedServiceAPI for dependency injection.
func ProvideFeedServiceAPI(s *services.FeedService) FeedServiceAPI { return s }

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	ProvideFeedServiceAPI,
	NewFeedHandler,
)
