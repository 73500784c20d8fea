// Package services 实现 Feed 槽位生成核心：按槽位独立掷骰选择候选池，
// 池内做权重轮盘赌抽样，池耗尽时走固定回退链。
package services

import (
	"context"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RollSource 抽象随机源，便于测试注入固定掷骰序列。
type RollSource interface {
	Intn(n int) int
	Float64() float64
}

// PostProjectionStore 抽象帖子投影的读取能力。
type PostProjectionStore interface {
	ListRecentVisible(ctx context.Context, tx pgx.Tx, since time.Time, limit int32) ([]*po.PostProjection, error)
}

// UserGraphStore 抽象声誉、关系边与画像的读取能力。
type UserGraphStore interface {
	GetReputation(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*po.UserReputation, error)
	ListBlockedAuthors(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowedPosts(ctx context.Context, tx pgx.Tx, userID uuid.UUID, since time.Time, limit int32) ([]*po.FollowedPost, error)
	GetFeedProfile(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*po.UserFeedProfile, error)
}

// ReputationProvider 抽象作者声誉查询，查询失败时调用方回退中性乘数。
type ReputationProvider interface {
	GetUserReputation(ctx context.Context, authorID uuid.UUID) (float64, error)
}

// EngagementScorer 抽象互动聚合打分。
type EngagementScorer interface {
	Score(likes, comments, shares int32, createdAt time.Time) float64
}

// Relationship 表示请求者与作者的关系，权重严格递减。
type Relationship string

const (
	RelationshipSubscription Relationship = "subscription"
	RelationshipFriend       Relationship = "friend"
	RelationshipFollow       Relationship = "follow"
	RelationshipNone         Relationship = "none"
)

// PersonalizedCandidate 表示个性化来源返回的单条候选。
type PersonalizedCandidate struct {
	Item         vo.FeedItem
	BaseScore    float64
	Relationship Relationship
	Relevance    float64
}

// PersonalizedCandidateSet 汇总个性化候选与请求者地理格。
type PersonalizedCandidateSet struct {
	Candidates    []PersonalizedCandidate
	RequesterCell string
}

// PersonalizationSource 抽象个性化候选来源（向量相似 + 社交图谱）。
type PersonalizationSource interface {
	GetPersonalizedCandidates(ctx context.Context, userID uuid.UUID) (*PersonalizedCandidateSet, error)
}

// RandomCandidateProvider 产出随机池候选，取数失败时返回空列表。
type RandomCandidateProvider interface {
	Fetch(ctx context.Context) []vo.ScoredItem
}

// TrendingCandidateProvider 产出热门池候选，取数失败时返回空列表。
type TrendingCandidateProvider interface {
	Fetch(ctx context.Context) []vo.ScoredItem
}

// PersonalizedCandidateProvider 产出个性化池候选，仅登录用户调用。
type PersonalizedCandidateProvider interface {
	Fetch(ctx context.Context, userID uuid.UUID) []vo.ScoredItem
}

// FeedLogStore 抽象生成日志写入能力。
type FeedLogStore interface {
	Insert(ctx context.Context, tx pgx.Tx, entry po.FeedGenerationLog) (uuid.UUID, error)
}

// InboxStore 抽象 Inbox 事件生命周期。
type InboxStore interface {
	Insert(ctx context.Context, tx pgx.Tx, evt po.InboxEvent) error
	MarkProcessed(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, processedAt *time.Time) error
	RecordError(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, lastError string) error
}

// PostProjectionWriter 抽象投影写入能力，供事件处理使用。
type PostProjectionWriter interface {
	Upsert(ctx context.Context, tx pgx.Tx, input repositories.UpsertPostProjectionInput) error
	ApplyCounters(ctx context.Context, tx pgx.Tx, input repositories.ApplyCountersInput) error
	Delete(ctx context.Context, tx pgx.Tx, postID uuid.UUID) error
}

// ReputationWriter 抽象声誉快照写入能力。
type ReputationWriter interface {
	UpsertReputation(ctx context.Context, tx pgx.Tx, userID uuid.UUID, current float64) error
}
