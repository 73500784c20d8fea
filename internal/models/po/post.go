// Package po 定义 Feed 服务的数据持久化结构体。
package po

import (
	"time"

	"github.com/google/uuid"
)

// PostProjection 表示 Feed 服务持久化的帖子投影数据。
type PostProjection struct {
	PostID        uuid.UUID
	AuthorID      uuid.UUID
	Content       *string
	Visibility    string
	LikesCount    int32
	CommentsCount int32
	SharesCount   int32
	Embedding     []float32
	GeoCell       *string
	Tags          []string
	CreatedAt     time.Time
	Version       int64
	UpdatedAt     time.Time
}

// FollowedPost 表示社交图谱来源的个性化候选行，
// Relationship 为请求者与作者的关系（subscription/friend/follow）。
type FollowedPost struct {
	Post         PostProjection
	Relationship string
}

// UserReputation 表示作者声誉快照。
type UserReputation struct {
	UserID    uuid.UUID
	Current   float64
	UpdatedAt time.Time
}

// UserFeedProfile 表示请求者的个性化画像（内容向量与地理格）。
type UserFeedProfile struct {
	UserID    uuid.UUID
	Embedding []float32
	GeoCell   *string
}

// InboxEvent 记录 Inbox 消费状态。
type InboxEvent struct {
	EventID       string
	SourceService string
	EventType     string
	AggregateType *string
	AggregateID   *string
	Payload       []byte
	ReceivedAt    time.Time
	ProcessedAt   *time.Time
	LastError     *string
}
