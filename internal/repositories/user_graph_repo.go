package repositories

import (
	"context"
	"errors"
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

// UserGraphRepository 提供声誉、关系边与请求者画像的读取能力。
type UserGraphRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewUserGraphRepository 构造仓储实例。
func NewUserGraphRepository(db *pgxpool.Pool, logger log.Logger) *UserGraphRepository {
	return &UserGraphRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *UserGraphRepository) queriesFor(tx pgx.Tx) *feeddb.Queries {
	if tx != nil {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// GetReputation 返回作者声誉快照，记录不存在时返回 (nil, nil)。
func (r *UserGraphRepository) GetReputation(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*po.UserReputation, error) {
	row, err := r.queriesFor(tx).GetUserReputation(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user reputation: %w", err)
	}
	return mappers.UserReputationFromRow(row), nil
}

// UpsertReputation 写入声誉快照。
func (r *UserGraphRepository) UpsertReputation(ctx context.Context, tx pgx.Tx, userID uuid.UUID, current float64) error {
	if err := r.queriesFor(tx).UpsertUserReputation(ctx, feeddb.UpsertUserReputationParams{
		UserID:  userID,
		Current: current,
	}); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "upsert user reputation failed", "user_id", userID, "error", err)
		return fmt.Errorf("upsert user reputation: %w", err)
	}
	return nil
}

// ListBlockedAuthors 返回请求者屏蔽或拉黑的作者集合。
func (r *UserGraphRepository) ListBlockedAuthors(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queriesFor(tx).ListBlockedAuthorIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list blocked authors: %w", err)
	}
	return ids, nil
}

// ListFollowedPosts 返回请求者社交图谱内作者的公开帖子。
func (r *UserGraphRepository) ListFollowedPosts(ctx context.Context, tx pgx.Tx, userID uuid.UUID, since time.Time, limit int32) ([]*po.FollowedPost, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queriesFor(tx).ListFollowedAuthorPosts(ctx, feeddb.ListFollowedAuthorPostsParams{
		UserID:       userID,
		CreatedAfter: mappers.ToPgTimestamptz(since),
		RowLimit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list followed author posts: %w", err)
	}
	result := make([]*po.FollowedPost, 0, len(rows))
	for _, row := range rows {
		result = append(result, mappers.FollowedPostFromRow(row))
	}
	return result, nil
}

// GetFeedProfile 返回请求者画像，缺失画像返回 (nil, nil)。
func (r *UserGraphRepository) GetFeedProfile(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*po.UserFeedProfile, error) {
	row, err := r.queriesFor(tx).GetUserFeedProfile(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user feed profile: %w", err)
	}
	return mappers.UserFeedProfileFromRow(row), nil
}
