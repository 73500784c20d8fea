package services

import (
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/google/uuid"
)

// CandidatePools 持有一次 Feed 生成预取的三个候选池。
type CandidatePools struct {
	Random       []vo.ScoredItem
	Trending     []vo.ScoredItem
	Personalized []vo.ScoredItem
}

// ByName 返回指定池的候选列表。
func (p *CandidatePools) ByName(name vo.PoolName) []vo.ScoredItem {
	switch name {
	case vo.PoolRandom:
		return p.Random
	case vo.PoolTrending:
		return p.Trending
	case vo.PoolPersonalized:
		return p.Personalized
	default:
		return nil
	}
}

// 回退顺序按入口池固定。
var fallbackOrder = map[vo.PoolName][]vo.PoolName{
	vo.PoolPersonalized: {vo.PoolPersonalized, vo.PoolTrending, vo.PoolRandom},
	vo.PoolTrending:     {vo.PoolTrending, vo.PoolRandom},
	vo.PoolRandom:       {vo.PoolRandom, vo.PoolTrending},
}

// FallbackChain 在入口池耗尽时按固定顺序尝试备选池。
type FallbackChain struct {
	sampler *WeightedSampler
}

// NewFallbackChain 构造 FallbackChain。
func NewFallbackChain(sampler *WeightedSampler) *FallbackChain {
	return &FallbackChain{sampler: sampler}
}

// SelectFromPool 从回退链上第一个存在未排除候选的池抽样并立即返回；
// 链上所有池均耗尽时返回 nil（槽位留空，不是错误）。
func (c *FallbackChain) SelectFromPool(entry vo.PoolName, excluded map[uuid.UUID]struct{}, pools *CandidatePools) *vo.ScoredItem {
	for _, name := range fallbackOrder[entry] {
		eligible := filterExcluded(pools.ByName(name), excluded)
		if len(eligible) == 0 {
			continue
		}
		return c.sampler.Sample(eligible)
	}
	return nil
}

func filterExcluded(candidates []vo.ScoredItem, excluded map[uuid.UUID]struct{}) []vo.ScoredItem {
	if len(candidates) == 0 {
		return nil
	}
	eligible := make([]vo.ScoredItem, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := excluded[candidate.Item.PostID]; ok {
			continue
		}
		eligible = append(eligible, candidate)
	}
	return eligible
}
