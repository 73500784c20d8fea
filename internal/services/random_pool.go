package services

import (
	"context"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/metrics"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// RandomCandidatePool 产出随机池候选：回看窗口内的公开帖子，
// 打分 = 时间衰减 × 声誉乘数。刻意不含互动信号，抑制回音室效应。
type RandomCandidatePool struct {
	posts      PostProjectionStore
	reputation ReputationProvider
	cfg        PoolConfig
	log        *log.Helper
	now        func() time.Time
}

// NewRandomCandidatePool 构造随机池。
func NewRandomCandidatePool(posts PostProjectionStore, reputation ReputationProvider, cfg PoolConfig, logger log.Logger) *RandomCandidatePool {
	return &RandomCandidatePool{
		posts:      posts,
		reputation: reputation,
		cfg:        cfg,
		log:        log.NewHelper(logger),
		now:        time.Now,
	}
}

// Fetch 返回打分后的候选，取数失败降级为空列表。
func (p *RandomCandidatePool) Fetch(ctx context.Context) []vo.ScoredItem {
	now := p.now().UTC()
	since := now.AddDate(0, 0, -p.cfg.LookbackDays)
	records, err := p.posts.ListRecentVisible(ctx, nil, since, p.cfg.Limit)
	if err != nil {
		p.log.WithContext(ctx).Warnw("msg", "random pool fetch degraded to empty", "error", err)
		metrics.FeedPoolFetchFailures.WithLabelValues(string(vo.PoolRandom)).Inc()
		return nil
	}
	repCache := make(map[uuid.UUID]float64, len(records))
	items := make([]vo.ScoredItem, 0, len(records))
	for _, record := range records {
		item := vo.FeedItemFromProjection(record)
		score := decayFactor(item.CreatedAt, now, p.cfg.DecayPerDay) *
			reputationMultiplierFor(ctx, p.reputation, repCache, item.AuthorID)
		items = append(items, vo.ScoredItem{Item: item, Pool: vo.PoolRandom, Score: score})
	}
	return items
}

var _ RandomCandidateProvider = (*RandomCandidatePool)(nil)
