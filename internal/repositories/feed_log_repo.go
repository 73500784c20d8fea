package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories/feeddb"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories/mappers"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedLogRepository 负责 Feed 生成日志持久化。
type FeedLogRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewFeedLogRepository 构造仓储实例。
func NewFeedLogRepository(db *pgxpool.Pool, logger log.Logger) *FeedLogRepository {
	return &FeedLogRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *FeedLogRepository) queriesFor(tx pgx.Tx) *feeddb.Queries {
	if tx != nil {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// Insert 写入生成日志并返回 log_id。
func (r *FeedLogRepository) Insert(ctx context.Context, tx pgx.Tx, entry po.FeedGenerationLog) (uuid.UUID, error) {
	rolls := entry.Rolls
	if rolls == nil {
		rolls = []int32{}
	}
	rollsPayload, err := json.Marshal(rolls)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal rolls: %w", err)
	}
	sources := entry.SlotSources
	if sources == nil {
		sources = []po.SlotSourceLog{}
	}
	sourcesPayload, err := json.Marshal(sources)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal slot_sources: %w", err)
	}
	var generatedAt *time.Time
	if !entry.GeneratedAt.IsZero() {
		gt := entry.GeneratedAt.UTC()
		generatedAt = &gt
	}
	params := feeddb.InsertFeedGenerationLogParams{
		UserID:         mappers.ToPgText(entry.UserID),
		RequestedSlots: entry.RequestedSlots,
		FilledSlots:    entry.FilledSlots,
		LoggedIn:       entry.LoggedIn,
		Rolls:          rollsPayload,
		SlotSources:    sourcesPayload,
		LatencyMs:      mappers.ToPgInt4(entry.LatencyMS),
		ErrorKind:      mappers.ToPgText(entry.ErrorKind),
		GeneratedAt:    mappers.ToPgTimestamptzPtr(generatedAt),
	}
	id, err := r.queriesFor(tx).InsertFeedGenerationLog(ctx, params)
	if err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert feed generation log failed", "error", err)
		return uuid.Nil, fmt.Errorf("insert feed generation log: %w", err)
	}
	return id, nil
}

// GetByID 按 log_id 查询生成日志。
func (r *FeedLogRepository) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*po.FeedGenerationLog, error) {
	row, err := r.queriesFor(tx).GetFeedGenerationLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feed generation log: %w", err)
	}
	return feedGenerationLogFromRow(row)
}

func feedGenerationLogFromRow(row feeddb.FeedGenerationLog) (*po.FeedGenerationLog, error) {
	var rolls []int32
	if len(row.Rolls) > 0 {
		if err := json.Unmarshal(row.Rolls, &rolls); err != nil {
			return nil, fmt.Errorf("unmarshal rolls: %w", err)
		}
	}
	var sources []po.SlotSourceLog
	if len(row.SlotSources) > 0 {
		if err := json.Unmarshal(row.SlotSources, &sources); err != nil {
			return nil, fmt.Errorf("unmarshal slot_sources: %w", err)
		}
	}
	entry := &po.FeedGenerationLog{
		LogID:          row.LogID.String(),
		RequestedSlots: row.RequestedSlots,
		FilledSlots:    row.FilledSlots,
		LoggedIn:       row.LoggedIn,
		Rolls:          rolls,
		SlotSources:    sources,
		GeneratedAt:    logTimestamp(row.GeneratedAt),
	}
	if row.UserID.Valid {
		entry.UserID = &row.UserID.String
	}
	if row.LatencyMs.Valid {
		entry.LatencyMS = &row.LatencyMs.Int32
	}
	if row.ErrorKind.Valid {
		entry.ErrorKind = &row.ErrorKind.String
	}
	return entry, nil
}

func logTimestamp(value pgtype.Timestamptz) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return value.Time.UTC()
}
