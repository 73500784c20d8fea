package repositories

import (
	"context"
	"fmt"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool 根据配置创建 Postgres 连接池。
func NewPgxPool(c *conf.Data, logger log.Logger) (*pgxpool.Pool, func(), error) {
	helper := log.NewHelper(logger)
	pool, err := pgxpool.New(context.Background(), c.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("create pgx pool: %w", err)
	}
	cleanup := func() {
		helper.Info("closing postgres pool")
		pool.Close()
	}
	return pool, cleanup, nil
}

// ProviderSet collects repository constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewPgxPool,
	NewPostProjectionRepository,
	NewUserGraphRepository,
	NewFeedInboxRepository,
	NewFeedLogRepository,
)
