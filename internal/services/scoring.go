package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// decayFactor 返回指数时间衰减 decayPerDay^elapsedDays，未来时间按 0 天处理。
func decayFactor(createdAt, now time.Time, decayPerDay float64) float64 {
	days := now.Sub(createdAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Pow(decayPerDay, days)
}

// reputationMultiplierFor 查询作者声誉并换算乘数，同一次取数内按作者缓存；
// 查询失败回退中性乘数 1.0，不中断整池打分。
func reputationMultiplierFor(ctx context.Context, provider ReputationProvider, cache map[uuid.UUID]float64, authorID uuid.UUID) float64 {
	if m, ok := cache[authorID]; ok {
		return m
	}
	multiplier := 1.0
	if score, err := provider.GetUserReputation(ctx, authorID); err == nil {
		multiplier = ReputationMultiplier(score)
	}
	cache[authorID] = multiplier
	return multiplier
}

// cosineSimilarity 计算两个内容向量的余弦相似度，
// 维度不符或任一为空返回 0（视为无重叠）。
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// 地理邻近加成：同格 1.25，前缀邻近 1.1，其余 1.0。格 ID 不透明，按前缀比较。
const geoPrefixLen = 5

func geoBoost(requesterCell, itemCell string) float64 {
	if requesterCell == "" || itemCell == "" {
		return 1.0
	}
	if requesterCell == itemCell {
		return 1.25
	}
	if len(requesterCell) >= geoPrefixLen && len(itemCell) >= geoPrefixLen &&
		requesterCell[:geoPrefixLen] == itemCell[:geoPrefixLen] {
		return 1.1
	}
	return 1.0
}

// relationshipWeight 返回关系权重，严格递减：订阅 > 好友 > 关注 > 无。
func relationshipWeight(rel Relationship) float64 {
	switch rel {
	case RelationshipSubscription:
		return 2.0
	case RelationshipFriend:
		return 1.75
	case RelationshipFollow:
		return 1.5
	default:
		return 1.0
	}
}
