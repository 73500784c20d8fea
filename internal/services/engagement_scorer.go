package services

import "time"

// 互动聚合权重：转发 > 评论 > 点赞。
const (
	likeWeight    = 1.0
	commentWeight = 2.0
	shareWeight   = 3.0
)

// WeightedEngagementScorer 以加权和聚合互动计数。
// createdAt 保留在契约里供替代实现使用（例如按龄归一化）。
type WeightedEngagementScorer struct{}

// NewWeightedEngagementScorer 构造默认互动打分器。
func NewWeightedEngagementScorer() *WeightedEngagementScorer {
	return &WeightedEngagementScorer{}
}

// Score 返回互动聚合分。
func (WeightedEngagementScorer) Score(likes, comments, shares int32, _ time.Time) float64 {
	return likeWeight*float64(likes) + commentWeight*float64(comments) + shareWeight*float64(shares)
}

var _ EngagementScorer = (*WeightedEngagementScorer)(nil)
