// Package mappers 提供数据库行与领域模型之间的转换工具。
package mappers

import (
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	feeddb "github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories/feeddb"

	"github.com/jackc/pgx/v5/pgtype"
)

// PostProjectionFromRow 将 sqlc 结构转换为领域对象。
func PostProjectionFromRow(row feeddb.FeedPostsProjection) *po.PostProjection {
	return &po.PostProjection{
		PostID:        row.PostID,
		AuthorID:      row.AuthorID,
		Content:       textPtr(row.Content),
		Visibility:    row.Visibility,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		SharesCount:   row.SharesCount,
		Embedding:     row.Embedding,
		GeoCell:       textPtr(row.GeoCell),
		Tags:          row.Tags,
		CreatedAt:     mustTimestamp(row.CreatedAt),
		Version:       row.Version,
		UpdatedAt:     mustTimestamp(row.UpdatedAt),
	}
}

// FollowedPostFromRow 转换社交图谱候选行。
func FollowedPostFromRow(row feeddb.ListFollowedAuthorPostsRow) *po.FollowedPost {
	return &po.FollowedPost{
		Post: po.PostProjection{
			PostID:        row.PostID,
			AuthorID:      row.AuthorID,
			Content:       textPtr(row.Content),
			Visibility:    row.Visibility,
			LikesCount:    row.LikesCount,
			CommentsCount: row.CommentsCount,
			SharesCount:   row.SharesCount,
			Embedding:     row.Embedding,
			GeoCell:       textPtr(row.GeoCell),
			Tags:          row.Tags,
			CreatedAt:     mustTimestamp(row.CreatedAt),
			Version:       row.Version,
			UpdatedAt:     mustTimestamp(row.UpdatedAt),
		},
		Relationship: row.EdgeType,
	}
}

// InboxEventFromRow 转换 Inbox 事件。
func InboxEventFromRow(row feeddb.FeedInboxEvent) *po.InboxEvent {
	return &po.InboxEvent{
		EventID:       row.EventID.String(),
		SourceService: row.SourceService,
		EventType:     row.EventType,
		AggregateType: textPtr(row.AggregateType),
		AggregateID:   textPtr(row.AggregateID),
		Payload:       row.Payload,
		ReceivedAt:    mustTimestamp(row.ReceivedAt),
		ProcessedAt:   timestampPtr(row.ProcessedAt),
		LastError:     textPtr(row.LastError),
	}
}

// UserReputationFromRow 转换声誉快照。
func UserReputationFromRow(row feeddb.FeedUserReputation) *po.UserReputation {
	return &po.UserReputation{
		UserID:    row.UserID,
		Current:   row.Current,
		UpdatedAt: mustTimestamp(row.UpdatedAt),
	}
}

// UserFeedProfileFromRow 转换请求者画像。
func UserFeedProfileFromRow(row feeddb.FeedUserProfile) *po.UserFeedProfile {
	return &po.UserFeedProfile{
		UserID:    row.UserID,
		Embedding: row.Embedding,
		GeoCell:   textPtr(row.GeoCell),
	}
}

// ToPgInt4 将 *int32 转换为 pgtype.Int4。
func ToPgInt4(value *int32) pgtype.Int4 {
	if value == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *value, Valid: true}
}

// ToPgText 将 *string 转换为 pgtype.Text。
func ToPgText(value *string) pgtype.Text {
	if value == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *value, Valid: true}
}

// ToPgTimestamptz 将 time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptz(value time.Time) pgtype.Timestamptz {
	if value.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

// ToPgTimestamptzPtr 将 *time.Time 转换为 pgtype.Timestamptz。
func ToPgTimestamptzPtr(value *time.Time) pgtype.Timestamptz {
	if value == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: value.UTC(), Valid: true}
}

func textPtr(value pgtype.Text) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func timestampPtr(value pgtype.Timestamptz) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}

func mustTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}
