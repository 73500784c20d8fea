package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecayFactor(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.InDelta(t, 1.0, decayFactor(now, now, 0.95), 1e-9)
	require.InDelta(t, 0.95, decayFactor(now.AddDate(0, 0, -1), now, 0.95), 1e-9)
	require.InDelta(t, 0.95*0.95, decayFactor(now.AddDate(0, 0, -2), now, 0.95), 1e-9)
	// 未来时间按 0 天处理。
	require.InDelta(t, 1.0, decayFactor(now.Add(time.Hour), now, 0.95), 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	require.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	require.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	require.Zero(t, cosineSimilarity(nil, []float32{1}))
	require.Zero(t, cosineSimilarity([]float32{1}, nil))
	require.Zero(t, cosineSimilarity([]float32{1, 2}, []float32{1}))
	require.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestGeoBoost(t *testing.T) {
	require.Equal(t, 1.25, geoBoost("9q8yy1", "9q8yy1"))
	require.Equal(t, 1.1, geoBoost("9q8yy1", "9q8yy2"))
	require.Equal(t, 1.0, geoBoost("9q8yy1", "dr5ru7"))
	require.Equal(t, 1.0, geoBoost("", "9q8yy1"))
	require.Equal(t, 1.0, geoBoost("9q8yy1", ""))
	// 过短的格 ID 无法做前缀比较。
	require.Equal(t, 1.0, geoBoost("9q8", "9q9"))
}

func TestRelationshipWeight_StrictlyDecreasing(t *testing.T) {
	require.Equal(t, 2.0, relationshipWeight(RelationshipSubscription))
	require.Equal(t, 1.75, relationshipWeight(RelationshipFriend))
	require.Equal(t, 1.5, relationshipWeight(RelationshipFollow))
	require.Equal(t, 1.0, relationshipWeight(RelationshipNone))
	require.Greater(t, relationshipWeight(RelationshipSubscription), relationshipWeight(RelationshipFriend))
	require.Greater(t, relationshipWeight(RelationshipFriend), relationshipWeight(RelationshipFollow))
	require.Greater(t, relationshipWeight(RelationshipFollow), relationshipWeight(RelationshipNone))
}

func TestReputationMultiplier_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  float64
	}{
		{100, 1.1},
		{80, 1.1},
		{79.9, 1.0},
		{50, 1.0},
		{40, 1.0},
		{39.9, 0.9},
		{20, 0.9},
		{19.9, 0.8},
		{0, 0.8},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ReputationMultiplier(tc.score), "score %v", tc.score)
	}
}

func TestReputationMultiplierFor_FailureFallsBackToNeutral(t *testing.T) {
	provider := &stubReputationProvider{err: errors.New("reputation service down")}
	cache := map[uuid.UUID]float64{}
	multiplier := reputationMultiplierFor(context.Background(), provider, cache, uuid.New())
	require.Equal(t, 1.0, multiplier)
}

func TestReputationMultiplierFor_CachesPerAuthor(t *testing.T) {
	author := uuid.New()
	provider := &stubReputationProvider{scores: map[uuid.UUID]float64{author: 90}}
	cache := map[uuid.UUID]float64{}

	first := reputationMultiplierFor(context.Background(), provider, cache, author)
	second := reputationMultiplierFor(context.Background(), provider, cache, author)
	require.Equal(t, 1.1, first)
	require.Equal(t, first, second)
	require.Equal(t, 1, provider.calls)
}

func TestWeightedEngagementScorer(t *testing.T) {
	scorer := NewWeightedEngagementScorer()
	require.Equal(t, 0.0, scorer.Score(0, 0, 0, time.Now()))
	// 2×1 + 3×2 + 1×3 = 11
	require.Equal(t, 11.0, scorer.Score(2, 3, 1, time.Now()))
	require.Equal(t, 3.0, scorer.Score(0, 0, 1, time.Now()))
	require.Equal(t, 2.0, scorer.Score(0, 1, 0, time.Now()))
	require.Equal(t, 1.0, scorer.Score(1, 0, 0, time.Now()))
}

func TestRepoReputationProvider_MissingRowReturnsNeutral(t *testing.T) {
	provider := NewRepoReputationProvider(&stubGraphStore{}, discardLogger())
	score, err := provider.GetUserReputation(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, float64(neutralReputation), score)
}

func TestRepoReputationProvider_PropagatesError(t *testing.T) {
	provider := NewRepoReputationProvider(&stubGraphStore{repErr: errors.New("db down")}, discardLogger())
	_, err := provider.GetUserReputation(context.Background(), uuid.New())
	require.Error(t, err)
}
