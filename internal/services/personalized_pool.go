package services

import (
	"context"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/metrics"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// PersonalizedCandidatePool 产出个性化池候选。
// 屏蔽/拉黑作者在打分前整体剔除；任何取数或打分失败都降级为空列表
// （触发回退链），绝不向调用方抛错——该行为是组合器韧性的前提，
// 但失败会打点并记结构化日志，避免静默退化。
type PersonalizedCandidatePool struct {
	source PersonalizationSource
	graph  UserGraphStore
	log    *log.Helper
}

// NewPersonalizedCandidatePool 构造个性化池。
func NewPersonalizedCandidatePool(source PersonalizationSource, graph UserGraphStore, logger log.Logger) *PersonalizedCandidatePool {
	return &PersonalizedCandidatePool{
		source: source,
		graph:  graph,
		log:    log.NewHelper(logger),
	}
}

// Fetch 返回打分后的个性化候选。
func (p *PersonalizedCandidatePool) Fetch(ctx context.Context, userID uuid.UUID) []vo.ScoredItem {
	set, err := p.source.GetPersonalizedCandidates(ctx, userID)
	if err != nil {
		p.log.WithContext(ctx).Warnw("msg", "personalized pool fetch degraded to empty", "user_id", userID, "error", err)
		metrics.FeedPoolFetchFailures.WithLabelValues(string(vo.PoolPersonalized)).Inc()
		return nil
	}
	blocked, err := p.graph.ListBlockedAuthors(ctx, nil, userID)
	if err != nil {
		p.log.WithContext(ctx).Warnw("msg", "personalized pool block list degraded to empty", "user_id", userID, "error", err)
		metrics.FeedPoolFetchFailures.WithLabelValues(string(vo.PoolPersonalized)).Inc()
		return nil
	}
	blockedSet := make(map[uuid.UUID]struct{}, len(blocked))
	for _, id := range blocked {
		blockedSet[id] = struct{}{}
	}
	items := make([]vo.ScoredItem, 0, len(set.Candidates))
	for _, candidate := range set.Candidates {
		if _, ok := blockedSet[candidate.Item.AuthorID]; ok {
			continue
		}
		relevance := candidate.Relevance
		if relevance < 0 {
			relevance = 0
		}
		score := candidate.BaseScore *
			relationshipWeight(candidate.Relationship) *
			(1 + relevance) *
			geoBoost(set.RequesterCell, candidate.Item.GeoCell)
		items = append(items, vo.ScoredItem{Item: candidate.Item, Pool: vo.PoolPersonalized, Score: score})
	}
	return items
}

var _ PersonalizedCandidateProvider = (*PersonalizedCandidatePool)(nil)
