// Package server 装配对外传输层。
package server

import (
	"net/http"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/controllers"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProviderSet 注册 server 层的构造函数。
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer 构造 HTTP 服务并注册路由。
func NewHTTPServer(c *conf.Server, feed *controllers.FeedHandler) *khttp.Server {
	var opts []khttp.ServerOption
	if c != nil && c.HTTP.Addr != "" {
		opts = append(opts, khttp.Address(c.HTTP.Addr))
	}
	if c != nil && c.HTTP.TimeoutSeconds > 0 {
		opts = append(opts, khttp.Timeout(time.Duration(c.HTTP.TimeoutSeconds)*time.Second))
	}
	srv := khttp.NewServer(opts...)
	srv.HandleFunc("/v1/feed", feed.GetFeed)
	srv.Handle("/metrics", promhttp.Handler())
	srv.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return srv
}
