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

// FeedInboxRepository 管理 feed.inbox_events。
type FeedInboxRepository struct {
	db      *pgxpool.Pool
	queries *feeddb.Queries
	log     *log.Helper
}

// NewFeedInboxRepository 构造 FeedInboxRepository。
func NewFeedInboxRepository(db *pgxpool.Pool, logger log.Logger) *FeedInboxRepository {
	return &FeedInboxRepository{
		db:      db,
		queries: feeddb.New(db),
		log:     log.NewHelper(logger),
	}
}

func (r *FeedInboxRepository) queriesFor(tx pgx.Tx) *feeddb.Queries {
	if tx != nil {
		return r.queries.WithTx(tx)
	}
	return r.queries
}

// Insert 写入 Inbox 记录，重复 event_id 幂等。
func (r *FeedInboxRepository) Insert(ctx context.Context, tx pgx.Tx, evt po.InboxEvent) error {
	id, err := uuid.Parse(evt.EventID)
	if err != nil {
		return fmt.Errorf("parse event_id: %w", err)
	}
	received := mappers.ToPgTimestamptzPtr(nil)
	if !evt.ReceivedAt.IsZero() {
		ts := evt.ReceivedAt.UTC()
		received = mappers.ToPgTimestamptzPtr(&ts)
	}
	params := feeddb.InsertInboxEventParams{
		EventID:       id,
		SourceService: evt.SourceService,
		EventType:     evt.EventType,
		AggregateType: mappers.ToPgText(evt.AggregateType),
		AggregateID:   mappers.ToPgText(evt.AggregateID),
		Payload:       evt.Payload,
		Column7:       received,
	}
	if err := r.queriesFor(tx).InsertInboxEvent(ctx, params); err != nil {
		r.log.WithContext(ctx).Errorw("msg", "insert feed inbox event failed", "event_id", evt.EventID, "error", err)
		return fmt.Errorf("insert feed inbox event: %w", err)
	}
	return nil
}

// MarkProcessed 设置事件已处理。
func (r *FeedInboxRepository) MarkProcessed(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, processedAt *time.Time) error {
	if err := r.queriesFor(tx).MarkInboxProcessed(ctx, feeddb.MarkInboxProcessedParams{
		EventID:     eventID,
		ProcessedAt: mappers.ToPgTimestamptzPtr(processedAt),
	}); err != nil {
		return fmt.Errorf("mark feed inbox processed: %w", err)
	}
	return nil
}

// RecordError 写入错误信息。
func (r *FeedInboxRepository) RecordError(ctx context.Context, tx pgx.Tx, eventID uuid.UUID, lastError string) error {
	if err := r.queriesFor(tx).RecordInboxError(ctx, feeddb.RecordInboxErrorParams{
		EventID:   eventID,
		LastError: mappers.ToPgText(&lastError),
	}); err != nil {
		return fmt.Errorf("record feed inbox error: %w", err)
	}
	return nil
}

// Get 返回指定 Inbox 事件。
func (r *FeedInboxRepository) Get(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*po.InboxEvent, error) {
	row, err := r.queriesFor(tx).GetInboxEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get feed inbox event: %w", err)
	}
	return mappers.InboxEventFromRow(row), nil
}
