package services

import (
	"context"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// GraphPersonalizationSource 基于社交图谱与内容向量产出个性化候选：
// 候选来自订阅/好友/关注作者的公开帖子，基础分为时间衰减，
// 相关性为请求者画像向量与帖子向量的余弦相似度。
type GraphPersonalizationSource struct {
	graph UserGraphStore
	cfg   PoolConfig
	log   *log.Helper
	now   func() time.Time
}

// NewGraphPersonalizationSource 构造个性化候选来源。
func NewGraphPersonalizationSource(graph UserGraphStore, cfg PoolConfig, logger log.Logger) *GraphPersonalizationSource {
	return &GraphPersonalizationSource{
		graph: graph,
		cfg:   cfg,
		log:   log.NewHelper(logger),
		now:   time.Now,
	}
}

// GetPersonalizedCandidates 返回请求者的个性化候选集合。
func (s *GraphPersonalizationSource) GetPersonalizedCandidates(ctx context.Context, userID uuid.UUID) (*PersonalizedCandidateSet, error) {
	profile, err := s.graph.GetFeedProfile(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	since := now.AddDate(0, 0, -s.cfg.LookbackDays)
	rows, err := s.graph.ListFollowedPosts(ctx, nil, userID, since, s.cfg.Limit)
	if err != nil {
		return nil, err
	}
	set := &PersonalizedCandidateSet{
		Candidates: make([]PersonalizedCandidate, 0, len(rows)),
	}
	var profileEmbedding []float32
	if profile != nil {
		profileEmbedding = profile.Embedding
		if profile.GeoCell != nil {
			set.RequesterCell = *profile.GeoCell
		}
	}
	for _, row := range rows {
		item := vo.FeedItemFromProjection(&row.Post)
		relevance := cosineSimilarity(profileEmbedding, item.Embedding)
		if relevance < 0 {
			relevance = 0
		}
		set.Candidates = append(set.Candidates, PersonalizedCandidate{
			Item:         item,
			BaseScore:    decayFactor(item.CreatedAt, now, s.cfg.DecayPerDay),
			Relationship: relationshipFromEdge(row.Relationship),
			Relevance:    relevance,
		})
	}
	return set, nil
}

func relationshipFromEdge(edgeType string) Relationship {
	switch edgeType {
	case "subscription":
		return RelationshipSubscription
	case "friend":
		return RelationshipFriend
	case "follow":
		return RelationshipFollow
	default:
		return RelationshipNone
	}
}

var _ PersonalizationSource = (*GraphPersonalizationSource)(nil)
