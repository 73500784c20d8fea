package services

import (
	"context"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/metrics"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// TrendingCandidatePool 产出热门池候选：与随机池同一候选域，
// 打分 = 互动聚合分 × 时间衰减 × 声誉乘数。
type TrendingCandidatePool struct {
	posts      PostProjectionStore
	reputation ReputationProvider
	engagement EngagementScorer
	cfg        PoolConfig
	log        *log.Helper
	now        func() time.Time
}

// NewTrendingCandidatePool 构造热门池。
func NewTrendingCandidatePool(posts PostProjectionStore, reputation ReputationProvider, engagement EngagementScorer, cfg PoolConfig, logger log.Logger) *TrendingCandidatePool {
	return &TrendingCandidatePool{
		posts:      posts,
		reputation: reputation,
		engagement: engagement,
		cfg:        cfg,
		log:        log.NewHelper(logger),
		now:        time.Now,
	}
}

// Fetch 返回打分后的候选，取数失败降级为空列表。
func (p *TrendingCandidatePool) Fetch(ctx context.Context) []vo.ScoredItem {
	now := p.now().UTC()
	since := now.AddDate(0, 0, -p.cfg.LookbackDays)
	records, err := p.posts.ListRecentVisible(ctx, nil, since, p.cfg.Limit)
	if err != nil {
		p.log.WithContext(ctx).Warnw("msg", "trending pool fetch degraded to empty", "error", err)
		metrics.FeedPoolFetchFailures.WithLabelValues(string(vo.PoolTrending)).Inc()
		return nil
	}
	repCache := make(map[uuid.UUID]float64, len(records))
	items := make([]vo.ScoredItem, 0, len(records))
	for _, record := range records {
		item := vo.FeedItemFromProjection(record)
		score := p.engagement.Score(item.LikesCount, item.CommentsCount, item.SharesCount, item.CreatedAt) *
			decayFactor(item.CreatedAt, now, p.cfg.DecayPerDay) *
			reputationMultiplierFor(ctx, p.reputation, repCache, item.AuthorID)
		items = append(items, vo.ScoredItem{Item: item, Pool: vo.PoolTrending, Score: score})
	}
	return items
}

var _ TrendingCandidateProvider = (*TrendingCandidatePool)(nil)
