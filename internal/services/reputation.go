package services

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// 声誉分按 0–100 刻度分带换算乘数：高声誉小幅加成，低声誉折价。
const (
	reputationHighBand = 80
	reputationMidBand  = 40
	reputationLowBand  = 20

	// neutralReputation 是缺失声誉记录时的回退分，落在中性带。
	neutralReputation = 50
)

// ReputationMultiplier 将声誉分换算为打分乘数。
func ReputationMultiplier(score float64) float64 {
	switch {
	case score >= reputationHighBand:
		return 1.1
	case score >= reputationMidBand:
		return 1.0
	case score >= reputationLowBand:
		return 0.9
	default:
		return 0.8
	}
}

// RepoReputationProvider 基于 user_reputation 表提供声誉查询。
type RepoReputationProvider struct {
	graph UserGraphStore
	log   *log.Helper
}

// NewRepoReputationProvider 构造 RepoReputationProvider。
func NewRepoReputationProvider(graph UserGraphStore, logger log.Logger) *RepoReputationProvider {
	return &RepoReputationProvider{
		graph: graph,
		log:   log.NewHelper(logger),
	}
}

// GetUserReputation 返回作者当前声誉分，缺失记录回退中性分。
func (p *RepoReputationProvider) GetUserReputation(ctx context.Context, authorID uuid.UUID) (float64, error) {
	rep, err := p.graph.GetReputation(ctx, nil, authorID)
	if err != nil {
		return 0, err
	}
	if rep == nil {
		return neutralReputation, nil
	}
	return rep.Current, nil
}

var _ ReputationProvider = (*RepoReputationProvider)(nil)
