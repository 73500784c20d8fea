// Package repositories 封装 feed schema 的数据访问。
package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories/feeddb"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories/mappers"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostProjectionRepository 维护 feed.posts_projection 投影。
type PostProjectionRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewPostProjectionRepository 构造仓储实例。
func NewPostProjectionRepository(db *pgxpool.Pool, logger log.Logger) *PostProjectionRepository {
	return &PostProjectionRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *PostProjectionRepository) queriesFor(tx pgx.Tx) *feeddb.Queries {
	if tx != nil {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// UpsertPostProjectionInput 描述投影写入参数。
type UpsertPostProjectionInput struct {
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
	UpdatedAt     *time.Time
}

// Upsert 写入或更新投影记录，版本号落后的写入被忽略。
func (r *PostProjectionRepository) Upsert(ctx context.Context, tx pgx.Tx, input UpsertPostProjectionInput) error {
	params := feeddb.UpsertPostProjectionParams{
		PostID:        input.PostID,
		AuthorID:      input.AuthorID,
		Content:       mappers.ToPgText(input.Content),
		Visibility:    input.Visibility,
		LikesCount:    input.LikesCount,
		CommentsCount: input.CommentsCount,
		SharesCount:   input.SharesCount,
		Embedding:     input.Embedding,
		GeoCell:       mappers.ToPgText(input.GeoCell),
		Tags:          input.Tags,
		CreatedAt:     mappers.ToPgTimestamptz(input.CreatedAt),
		Version:       input.Version,
		Column13:      mappers.ToPgTimestamptzPtr(input.UpdatedAt),
	}
	if err := r.queriesFor(tx).UpsertPostProjection(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "upsert post projection failed", "post_id", input.PostID, "error", err)
		return fmt.Errorf("upsert post projection: %w", err)
	}
	return nil
}

// ApplyCountersInput 描述互动计数更新参数。
type ApplyCountersInput struct {
	PostID        uuid.UUID
	LikesCount    int32
	CommentsCount int32
	SharesCount   int32
	Version       int64
}

// ApplyCounters 更新互动计数，仅接受更新版本。
func (r *PostProjectionRepository) ApplyCounters(ctx context.Context, tx pgx.Tx, input ApplyCountersInput) error {
	if err := r.queriesFor(tx).ApplyPostCounters(ctx, feeddb.ApplyPostCountersParams{
		PostID:        input.PostID,
		LikesCount:    input.LikesCount,
		CommentsCount: input.CommentsCount,
		SharesCount:   input.SharesCount,
		Version:       input.Version,
	}); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "apply post counters failed", "post_id", input.PostID, "error", err)
		return fmt.Errorf("apply post counters: %w", err)
	}
	return nil
}

// Delete 删除投影记录。
func (r *PostProjectionRepository) Delete(ctx context.Context, tx pgx.Tx, postID uuid.UUID) error {
	if err := r.queriesFor(tx).DeletePostProjection(ctx, postID); err != nil {
		return fmt.Errorf("delete post projection: %w", err)
	}
	return nil
}

// Get 返回单个投影。
func (r *PostProjectionRepository) Get(ctx context.Context, tx pgx.Tx, postID uuid.UUID) (*po.PostProjection, error) {
	row, err := r.queriesFor(tx).GetPostProjection(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post projection: %w", err)
	}
	return mappers.PostProjectionFromRow(row), nil
}

// ListRecentVisible 返回回看窗口内的公开帖子。
func (r *PostProjectionRepository) ListRecentVisible(ctx context.Context, tx pgx.Tx, since time.Time, limit int32) ([]*po.PostProjection, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queriesFor(tx).ListRecentVisiblePosts(ctx, feeddb.ListRecentVisiblePostsParams{
		CreatedAfter: mappers.ToPgTimestamptz(since),
		RowLimit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent visible posts: %w", err)
	}
	result := make([]*po.PostProjection, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.PostProjectionFromRow(row))
	}
	return result, nil
}
