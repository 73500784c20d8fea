// Package vo 定义向上层返回的 Feed 视图对象。
package vo

import (
	"time"

	"github.com/google/uuid"
)

// PoolName 标识候选池类型，取值固定为三种。
type PoolName string

const (
	// PoolRandom 随机池：仅按时间衰减与作者声誉打分。
	PoolRandom PoolName = "random"
	// PoolTrending 热门池：叠加互动分数。
	PoolTrending PoolName = "trending"
	// PoolPersonalized 个性化池：仅登录用户可用。
	PoolPersonalized PoolName = "personalized"
)

// FeedItem 表示一条候选内容的只读快照，排序核心不修改它。
type FeedItem struct {
	PostID        uuid.UUID `json:"post_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int32     `json:"likes_count"`
	CommentsCount int32     `json:"comments_count"`
	SharesCount   int32     `json:"shares_count"`
	Embedding     []float32 `json:"-"`
	GeoCell       string    `json:"geo_cell,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

// ScoredItem 携带条目所属池与该池的打分，分数非负。
// 采样时以 max(0.1, Score) 作为权重，保证零分条目仍可被抽中。
type ScoredItem struct {
	Item  FeedItem
	Pool  PoolName
	Score float64
}

// SlotResult 表示一个槽位最终选中的条目。
// Pool 为实际命中的池（经过回退链后可能不同于掷骰命中的池），
// Roll 为原始掷骰值（0–99），用于诊断。
type SlotResult struct {
	Item FeedItem `json:"item"`
	Pool PoolName `json:"pool"`
	Roll int      `json:"roll"`
}

// FeedStats 汇总一次 Feed 生成的诊断信息，面向日志与遥测。
// RollCounts 统计掷骰命中（而非实际填充）的池分布。
type FeedStats struct {
	Slots       int                  `json:"slots"`
	Filled      int                  `json:"filled"`
	RollCounts  map[PoolName]int     `json:"roll_counts"`
	Rolls       []int                `json:"rolls"`
	LoggedIn    bool                 `json:"logged_in"`
	ExpectedPct map[PoolName]float64 `json:"expected_pct"`
}

// FeedResponse 汇总 Feed 返回的数据。
type FeedResponse struct {
	Posts       []SlotResult `json:"posts"`
	Stats       FeedStats    `json:"stats"`
	GeneratedAt time.Time    `json:"generated_at"`
}
