// Package conf 定义服务配置结构并负责加载。
package conf

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/google/wire"
)

// ProviderSet exposes config section providers for DI.
var ProviderSet = wire.NewSet(ProvideServer, ProvideData, ProvideFeed)

// ProvideServer 返回服务监听配置段。
func ProvideServer(bc *Bootstrap) *Server { return &bc.Server }

// ProvideData 返回数据依赖配置段。
func ProvideData(bc *Bootstrap) *Data { return &bc.Data }

// ProvideFeed 返回 Feed 调优配置段。
func ProvideFeed(bc *Bootstrap) *Feed { return &bc.Feed }

// Bootstrap 汇总服务启动所需的全部配置。
type Bootstrap struct {
	Server Server `json:"server"`
	Data   Data   `json:"data"`
	Feed   Feed   `json:"feed"`
}

// Server 描述对外监听配置。
type Server struct {
	HTTP HTTPServer `json:"http"`
}

// HTTPServer 描述 HTTP 监听参数。
type HTTPServer struct {
	Addr           string `json:"addr"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Data 描述数据依赖配置。
type Data struct {
	Database Database `json:"database"`
	NATS     NATS     `json:"nats"`
}

// Database 描述 Postgres 连接配置。
type Database struct {
	DSN string `json:"dsn"`
}

// NATS 描述事件总线连接配置。
type NATS struct {
	URL string `json:"url"`
}

// Feed 描述槽位生成核心的调优参数，零值在 services 层回退默认值。
type Feed struct {
	Slots                 int     `json:"slots"`
	LoggedInRandomBelow   int     `json:"logged_in_random_below"`
	LoggedInTrendingBelow int     `json:"logged_in_trending_below"`
	LoggedOutRandomBelow  int     `json:"logged_out_random_below"`
	LookbackDays          int     `json:"lookback_days"`
	DecayPerDay           float64 `json:"decay_per_day"`
	PoolLimit             int     `json:"pool_limit"`
}

// Load 从文件加载配置。
func Load(path string) (*Bootstrap, func(), error) {
	c := config.New(config.WithSource(file.NewSource(path)))
	if err := c.Load(); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("scan config: %w", err)
	}
	cleanup := func() {
		_ = c.Close()
	}
	return &bc, cleanup, nil
}
