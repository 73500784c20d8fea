package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedEdge(t *testing.T, userID, targetID uuid.UUID, edgeType string) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO feed.user_edges (user_id, target_id, edge_type)
		VALUES ($1, $2, $3)
	`, userID, targetID, edgeType)
	require.NoError(t, err)
}

func seedProfile(t *testing.T, userID uuid.UUID, embedding []float32, geoCell *string) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO feed.user_profiles (user_id, embedding, geo_cell)
		VALUES ($1, $2, $3)
	`, userID, embedding, geoCell)
	require.NoError(t, err)
}

func TestUserGraphRepository_ReputationLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newUserGraphRepo()
	userID := uuid.New()

	// 缺失记录返回 (nil, nil)，调用方回退中性分。
	rep, err := repo.GetReputation(ctx, nil, userID)
	require.NoError(t, err)
	require.Nil(t, rep)

	require.NoError(t, repo.UpsertReputation(ctx, nil, userID, 85.5))
	rep, err = repo.GetReputation(ctx, nil, userID)
	require.NoError(t, err)
	require.NotNil(t, rep)
	require.Equal(t, 85.5, rep.Current)

	require.NoError(t, repo.UpsertReputation(ctx, nil, userID, 42))
	rep, err = repo.GetReputation(ctx, nil, userID)
	require.NoError(t, err)
	require.Equal(t, float64(42), rep.Current)
}

func TestUserGraphRepository_ListBlockedAuthors(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newUserGraphRepo()

	userID := uuid.New()
	muted := uuid.New()
	blocked := uuid.New()
	followed := uuid.New()
	seedEdge(t, userID, muted, "mute")
	seedEdge(t, userID, blocked, "block")
	seedEdge(t, userID, followed, "follow")

	ids, err := repo.ListBlockedAuthors(ctx, nil, userID)
	require.NoError(t, err)
	require.ElementsMatch(t, []uuid.UUID{muted, blocked}, ids)
}

func TestUserGraphRepository_ListFollowedPosts(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	graph := newUserGraphRepo()
	posts := newPostProjectionRepo()
	now := time.Now().UTC()

	userID := uuid.New()
	subscribedAuthor := uuid.New()
	strangerAuthor := uuid.New()
	seedEdge(t, userID, subscribedAuthor, "subscription")

	followedPost := sampleUpsertInput(uuid.New(), subscribedAuthor, now.Add(-time.Hour))
	strangerPost := sampleUpsertInput(uuid.New(), strangerAuthor, now.Add(-time.Hour))
	privatePost := sampleUpsertInput(uuid.New(), subscribedAuthor, now.Add(-time.Minute))
	privatePost.Visibility = "followers"
	require.NoError(t, posts.Upsert(ctx, nil, followedPost))
	require.NoError(t, posts.Upsert(ctx, nil, strangerPost))
	require.NoError(t, posts.Upsert(ctx, nil, privatePost))

	rows, err := graph.ListFollowedPosts(ctx, nil, userID, now.AddDate(0, 0, -30), 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, followedPost.PostID, rows[0].Post.PostID)
	require.Equal(t, "subscription", rows[0].Relationship)
}

func TestUserGraphRepository_GetFeedProfile(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newUserGraphRepo()
	userID := uuid.New()

	profile, err := repo.GetFeedProfile(ctx, nil, userID)
	require.NoError(t, err)
	require.Nil(t, profile)

	seedProfile(t, userID, []float32{0.5, 0.5}, stringPtr("9q8yy1"))
	profile, err = repo.GetFeedProfile(ctx, nil, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, userID, profile.UserID)
	require.Equal(t, []float32{0.5, 0.5}, profile.Embedding)
	require.NotNil(t, profile.GeoCell)
	require.Equal(t, "9q8yy1", *profile.GeoCell)
}
