package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testPoolConfig() PoolConfig {
	return PoolConfig{
		LookbackDays: DefaultLookbackDays,
		DecayPerDay:  DefaultDecayPerDay,
		Limit:        DefaultPoolLimit,
	}
}

func projection(authorID uuid.UUID, createdAt time.Time, likes, comments, shares int32) *po.PostProjection {
	return &po.PostProjection{
		PostID:        uuid.New(),
		AuthorID:      authorID,
		Visibility:    "public",
		LikesCount:    likes,
		CommentsCount: comments,
		SharesCount:   shares,
		CreatedAt:     createdAt,
	}
}

func TestRandomPool_FetchFailureDegradesToEmpty(t *testing.T) {
	pool := NewRandomCandidatePool(
		&stubPostStore{err: errors.New("db down")},
		&stubReputationProvider{},
		testPoolConfig(),
		discardLogger(),
	)
	require.Empty(t, pool.Fetch(context.Background()))
}

func TestRandomPool_ScoreIsDecayTimesReputation(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	author := uuid.New()
	record := projection(author, now.AddDate(0, 0, -1), 100, 50, 25)

	pool := NewRandomCandidatePool(
		&stubPostStore{records: []*po.PostProjection{record}},
		&stubReputationProvider{scores: map[uuid.UUID]float64{author: 90}},
		testPoolConfig(),
		discardLogger(),
	)
	pool.now = func() time.Time { return now }

	items := pool.Fetch(context.Background())
	require.Len(t, items, 1)
	require.Equal(t, vo.PoolRandom, items[0].Pool)
	// 随机池打分不含互动信号：仅 衰减 × 声誉乘数。
	require.InDelta(t, 0.95*1.1, items[0].Score, 1e-9)
}

func TestRandomPool_ReputationFailureUsesNeutralMultiplier(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	record := projection(uuid.New(), now, 0, 0, 0)

	pool := NewRandomCandidatePool(
		&stubPostStore{records: []*po.PostProjection{record}},
		&stubReputationProvider{err: errors.New("timeout")},
		testPoolConfig(),
		discardLogger(),
	)
	pool.now = func() time.Time { return now }

	items := pool.Fetch(context.Background())
	require.Len(t, items, 1)
	require.InDelta(t, 1.0, items[0].Score, 1e-9)
}

func TestTrendingPool_ScoreIncludesEngagement(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	author := uuid.New()
	// 互动聚合：2×1 + 3×2 + 1×3 = 11
	record := projection(author, now.AddDate(0, 0, -1), 2, 3, 1)

	pool := NewTrendingCandidatePool(
		&stubPostStore{records: []*po.PostProjection{record}},
		&stubReputationProvider{scores: map[uuid.UUID]float64{author: 10}},
		NewWeightedEngagementScorer(),
		testPoolConfig(),
		discardLogger(),
	)
	pool.now = func() time.Time { return now }

	items := pool.Fetch(context.Background())
	require.Len(t, items, 1)
	require.Equal(t, vo.PoolTrending, items[0].Pool)
	require.InDelta(t, 11*0.95*0.8, items[0].Score, 1e-9)
}

func TestTrendingPool_FetchFailureDegradesToEmpty(t *testing.T) {
	pool := NewTrendingCandidatePool(
		&stubPostStore{err: errors.New("db down")},
		&stubReputationProvider{},
		NewWeightedEngagementScorer(),
		testPoolConfig(),
		discardLogger(),
	)
	require.Empty(t, pool.Fetch(context.Background()))
}

type stubPersonalizationSource struct {
	set *PersonalizedCandidateSet
	err error
}

func (s *stubPersonalizationSource) GetPersonalizedCandidates(context.Context, uuid.UUID) (*PersonalizedCandidateSet, error) {
	return s.set, s.err
}

func TestPersonalizedPool_SourceFailureDegradesToEmpty(t *testing.T) {
	pool := NewPersonalizedCandidatePool(
		&stubPersonalizationSource{err: errors.New("profile service down")},
		&stubGraphStore{},
		discardLogger(),
	)
	require.Empty(t, pool.Fetch(context.Background(), uuid.New()))
}

func TestPersonalizedPool_BlockedAuthorsFiltered(t *testing.T) {
	blockedAuthor := uuid.New()
	keptAuthor := uuid.New()
	set := &PersonalizedCandidateSet{
		Candidates: []PersonalizedCandidate{
			{Item: vo.FeedItem{PostID: uuid.New(), AuthorID: blockedAuthor}, BaseScore: 1, Relationship: RelationshipFollow},
			{Item: vo.FeedItem{PostID: uuid.New(), AuthorID: keptAuthor}, BaseScore: 1, Relationship: RelationshipFollow},
		},
	}
	pool := NewPersonalizedCandidatePool(
		&stubPersonalizationSource{set: set},
		&stubGraphStore{blocked: []uuid.UUID{blockedAuthor}},
		discardLogger(),
	)

	items := pool.Fetch(context.Background(), uuid.New())
	require.Len(t, items, 1)
	require.Equal(t, keptAuthor, items[0].Item.AuthorID)
}

func TestPersonalizedPool_ScoreFormula(t *testing.T) {
	author := uuid.New()
	set := &PersonalizedCandidateSet{
		RequesterCell: "9q8yy1",
		Candidates: []PersonalizedCandidate{
			{
				Item:         vo.FeedItem{PostID: uuid.New(), AuthorID: author, GeoCell: "9q8yy1"},
				BaseScore:    0.9,
				Relationship: RelationshipSubscription,
				Relevance:    0.5,
			},
		},
	}
	pool := NewPersonalizedCandidatePool(
		&stubPersonalizationSource{set: set},
		&stubGraphStore{},
		discardLogger(),
	)

	items := pool.Fetch(context.Background(), uuid.New())
	require.Len(t, items, 1)
	require.Equal(t, vo.PoolPersonalized, items[0].Pool)
	// 0.9 × 2.0（订阅）× 1.5（1+相关性）× 1.25（同地理格）
	require.InDelta(t, 0.9*2.0*1.5*1.25, items[0].Score, 1e-9)
}

func TestPersonalizedPool_BlockListFailureDegradesToEmpty(t *testing.T) {
	set := &PersonalizedCandidateSet{
		Candidates: []PersonalizedCandidate{
			{Item: vo.FeedItem{PostID: uuid.New(), AuthorID: uuid.New()}, BaseScore: 1},
		},
	}
	pool := NewPersonalizedCandidatePool(
		&stubPersonalizationSource{set: set},
		&stubGraphStore{blockedErr: errors.New("db down")},
		discardLogger(),
	)
	require.Empty(t, pool.Fetch(context.Background(), uuid.New()))
}

func TestGraphPersonalizationSource_BuildsCandidates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	cell := "9q8yy1"
	post := projection(uuid.New(), now.AddDate(0, 0, -1), 1, 0, 0)
	post.Embedding = []float32{1, 0}

	source := NewGraphPersonalizationSource(&stubGraphStore{
		profile:  &po.UserFeedProfile{UserID: userID, Embedding: []float32{1, 0}, GeoCell: &cell},
		followed: []*po.FollowedPost{{Post: *post, Relationship: "subscription"}},
	}, testPoolConfig(), discardLogger())
	source.now = func() time.Time { return now }

	set, err := source.GetPersonalizedCandidates(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, cell, set.RequesterCell)
	require.Len(t, set.Candidates, 1)
	candidate := set.Candidates[0]
	require.Equal(t, RelationshipSubscription, candidate.Relationship)
	require.InDelta(t, 0.95, candidate.BaseScore, 1e-9)
	require.InDelta(t, 1.0, candidate.Relevance, 1e-6)
}

func TestGraphPersonalizationSource_MissingProfileStillReturnsCandidates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	post := projection(uuid.New(), now, 0, 0, 0)

	source := NewGraphPersonalizationSource(&stubGraphStore{
		followed: []*po.FollowedPost{{Post: *post, Relationship: "follow"}},
	}, testPoolConfig(), discardLogger())
	source.now = func() time.Time { return now }

	set, err := source.GetPersonalizedCandidates(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, set.RequesterCell)
	require.Len(t, set.Candidates, 1)
	require.Zero(t, set.Candidates[0].Relevance)
}
