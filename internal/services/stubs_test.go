package services

import (
	"context"
	"io"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func discardLogger() log.Logger {
	return log.NewStdLogger(io.Discard)
}

// scriptedRolls 按脚本返回掷骰与采样值，耗尽后返回 0。
type scriptedRolls struct {
	ints   []int
	floats []float64
}

func (s *scriptedRolls) Intn(int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedRolls) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

type stubPostStore struct {
	records []*po.PostProjection
	err     error
}

func (s *stubPostStore) ListRecentVisible(context.Context, pgx.Tx, time.Time, int32) ([]*po.PostProjection, error) {
	return s.records, s.err
}

type stubReputationProvider struct {
	scores map[uuid.UUID]float64
	err    error
	calls  int
}

func (s *stubReputationProvider) GetUserReputation(_ context.Context, authorID uuid.UUID) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if score, ok := s.scores[authorID]; ok {
		return score, nil
	}
	return neutralReputation, nil
}

type stubGraphStore struct {
	reputation *po.UserReputation
	repErr     error
	blocked    []uuid.UUID
	blockedErr error
	followed   []*po.FollowedPost
	followErr  error
	profile    *po.UserFeedProfile
	profileErr error
}

func (s *stubGraphStore) GetReputation(context.Context, pgx.Tx, uuid.UUID) (*po.UserReputation, error) {
	return s.reputation, s.repErr
}

func (s *stubGraphStore) ListBlockedAuthors(context.Context, pgx.Tx, uuid.UUID) ([]uuid.UUID, error) {
	return s.blocked, s.blockedErr
}

func (s *stubGraphStore) ListFollowedPosts(context.Context, pgx.Tx, uuid.UUID, time.Time, int32) ([]*po.FollowedPost, error) {
	return s.followed, s.followErr
}

func (s *stubGraphStore) GetFeedProfile(context.Context, pgx.Tx, uuid.UUID) (*po.UserFeedProfile, error) {
	return s.profile, s.profileErr
}

type stubRandomProvider struct {
	items []vo.ScoredItem
}

func (s *stubRandomProvider) Fetch(context.Context) []vo.ScoredItem { return s.items }

type stubTrendingProvider struct {
	items []vo.ScoredItem
}

func (s *stubTrendingProvider) Fetch(context.Context) []vo.ScoredItem { return s.items }

type stubPersonalizedProvider struct {
	items  []vo.ScoredItem
	called bool
	userID uuid.UUID
}

func (s *stubPersonalizedProvider) Fetch(_ context.Context, userID uuid.UUID) []vo.ScoredItem {
	s.called = true
	s.userID = userID
	return s.items
}

func scoredItem(pool vo.PoolName, score float64) vo.ScoredItem {
	return vo.ScoredItem{
		Item: vo.FeedItem{
			PostID:    uuid.New(),
			AuthorID:  uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Pool:  pool,
		Score: score,
	}
}
