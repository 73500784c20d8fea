package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFeedLogRepository_InsertAndGet(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newFeedLogRepo()

	generatedAt := time.Now().UTC().Truncate(time.Microsecond)
	latency := int32(12)
	entry := po.FeedGenerationLog{
		UserID:         stringPtr("user-1"),
		RequestedSlots: 15,
		FilledSlots:    13,
		LoggedIn:       true,
		Rolls:          []int32{5, 15, 35},
		SlotSources: []po.SlotSourceLog{
			{PostID: uuid.NewString(), Pool: "random", Roll: 5},
			{PostID: uuid.NewString(), Pool: "trending", Roll: 15},
		},
		LatencyMS:   &latency,
		GeneratedAt: generatedAt,
	}

	id, err := repo.Insert(ctx, nil, entry)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := repo.GetByID(ctx, nil, id)
	require.NoError(t, err)
	require.Equal(t, id.String(), got.LogID)
	require.NotNil(t, got.UserID)
	require.Equal(t, "user-1", *got.UserID)
	require.Equal(t, int32(15), got.RequestedSlots)
	require.Equal(t, int32(13), got.FilledSlots)
	require.True(t, got.LoggedIn)
	require.Equal(t, []int32{5, 15, 35}, got.Rolls)
	require.Len(t, got.SlotSources, 2)
	require.Equal(t, "random", got.SlotSources[0].Pool)
	require.NotNil(t, got.LatencyMS)
	require.Equal(t, int32(12), *got.LatencyMS)
	require.Nil(t, got.ErrorKind)
	require.WithinDuration(t, generatedAt, got.GeneratedAt, time.Millisecond)
}

func TestFeedLogRepository_AnonymousEntry(t *testing.T) {
	resetDatabase(t)
	ctx := context.Background()
	repo := newFeedLogRepo()

	id, err := repo.Insert(ctx, nil, po.FeedGenerationLog{
		RequestedSlots: 15,
		FilledSlots:    0,
		LoggedIn:       false,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, nil, id)
	require.NoError(t, err)
	require.Nil(t, got.UserID)
	require.False(t, got.LoggedIn)
	require.Empty(t, got.Rolls)
	require.Empty(t, got.SlotSources)
	require.False(t, got.GeneratedAt.IsZero())
}
