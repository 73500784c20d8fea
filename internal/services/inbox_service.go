package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/metrics"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// Inbox 事件类型，与上游服务发布的 NATS subject 对应。
const (
	EventPostCreated       = "content.post.created"
	EventPostUpdated       = "content.post.updated"
	EventPostDeleted       = "content.post.deleted"
	EventPostCounters      = "engagement.post.counters"
	EventReputationUpdated = "civic.reputation.updated"
)

// ErrUnknownEventType 表示事件类型不在本服务的消费范围内。
var ErrUnknownEventType = errors.New("unknown inbox event type")

type postEventPayload struct {
	PostID        string    `json:"post_id"`
	AuthorID      string    `json:"author_id"`
	Content       *string   `json:"content,omitempty"`
	Visibility    string    `json:"visibility"`
	LikesCount    int32     `json:"likes_count"`
	CommentsCount int32     `json:"comments_count"`
	SharesCount   int32     `json:"shares_count"`
	Embedding     []float32 `json:"embedding,omitempty"`
	GeoCell       *string   `json:"geo_cell,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Version       int64     `json:"version"`
}

type countersEventPayload struct {
	PostID        string `json:"post_id"`
	LikesCount    int32  `json:"likes_count"`
	CommentsCount int32  `json:"comments_count"`
	SharesCount   int32  `json:"shares_count"`
	Version       int64  `json:"version"`
}

type reputationEventPayload struct {
	UserID  string  `json:"user_id"`
	Current float64 `json:"current"`
}

// InboxService 消费上游事件并维护 Feed 读取的投影表。
type InboxService struct {
	inbox      InboxStore
	posts      PostProjectionWriter
	reputation ReputationWriter
	log        *log.Helper
}

// NewInboxService 构造 InboxService。
func NewInboxService(inbox InboxStore, posts PostProjectionWriter, reputation ReputationWriter, logger log.Logger) *InboxService {
	return &InboxService{
		inbox:      inbox,
		posts:      posts,
		reputation: reputation,
		log:        log.NewHelper(logger),
	}
}

// Handle 将事件幂等落库、应用到投影并标记处理结果。
func (s *InboxService) Handle(ctx context.Context, evt po.InboxEvent) error {
	eventID, err := uuid.Parse(evt.EventID)
	if err != nil {
		return fmt.Errorf("parse event_id: %w", err)
	}
	if err := s.inbox.Insert(ctx, nil, evt); err != nil {
		return err
	}
	if err := s.apply(ctx, evt); err != nil {
		if recordErr := s.inbox.RecordError(ctx, nil, eventID, err.Error()); recordErr != nil {
			s.log.WithContext(ctx).Errorw("msg", "record inbox error failed", "event_id", evt.EventID, "error", recordErr)
		}
		metrics.InboxEventsTotal.WithLabelValues(evt.EventType, "error").Inc()
		return err
	}
	now := time.Now().UTC()
	if err := s.inbox.MarkProcessed(ctx, nil, eventID, &now); err != nil {
		return err
	}
	metrics.InboxEventsTotal.WithLabelValues(evt.EventType, "ok").Inc()
	return nil
}

func (s *InboxService) apply(ctx context.Context, evt po.InboxEvent) error {
	switch evt.EventType {
	case EventPostCreated, EventPostUpdated:
		var payload postEventPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal post payload: %w", err)
		}
		postID, err := uuid.Parse(payload.PostID)
		if err != nil {
			return fmt.Errorf("parse post_id: %w", err)
		}
		authorID, err := uuid.Parse(payload.AuthorID)
		if err != nil {
			return fmt.Errorf("parse author_id: %w", err)
		}
		return s.posts.Upsert(ctx, nil, repositories.UpsertPostProjectionInput{
			PostID:        postID,
			AuthorID:      authorID,
			Content:       payload.Content,
			Visibility:    payload.Visibility,
			LikesCount:    payload.LikesCount,
			CommentsCount: payload.CommentsCount,
			SharesCount:   payload.SharesCount,
			Embedding:     payload.Embedding,
			GeoCell:       payload.GeoCell,
			Tags:          payload.Tags,
			CreatedAt:     payload.CreatedAt,
			Version:       payload.Version,
		})
	case EventPostDeleted:
		var payload postEventPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal post payload: %w", err)
		}
		postID, err := uuid.Parse(payload.PostID)
		if err != nil {
			return fmt.Errorf("parse post_id: %w", err)
		}
		return s.posts.Delete(ctx, nil, postID)
	case EventPostCounters:
		var payload countersEventPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal counters payload: %w", err)
		}
		postID, err := uuid.Parse(payload.PostID)
		if err != nil {
			return fmt.Errorf("parse post_id: %w", err)
		}
		return s.posts.ApplyCounters(ctx, nil, repositories.ApplyCountersInput{
			PostID:        postID,
			LikesCount:    payload.LikesCount,
			CommentsCount: payload.CommentsCount,
			SharesCount:   payload.SharesCount,
			Version:       payload.Version,
		})
	case EventReputationUpdated:
		var payload reputationEventPayload
		if err := json.Unmarshal(evt.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal reputation payload: %w", err)
		}
		userID, err := uuid.Parse(payload.UserID)
		if err != nil {
			return fmt.Errorf("parse user_id: %w", err)
		}
		return s.reputation.UpsertReputation(ctx, nil, userID, payload.Current)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, evt.EventType)
	}
}
