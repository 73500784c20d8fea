package services

import (
	"github.com/google/wire"
)

// ProviderSet collects service constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewRollSource,
	NewWeightedSampler,
	NewFallbackChain,
	NewWeightedEngagementScorer,
	wire.Bind(new(EngagementScorer), new(*WeightedEngagementScorer)),
	NewRepoReputationProvider,
	wire.Bind(new(ReputationProvider), new(*RepoReputationProvider)),
	NewGraphPersonalizationSource,
	wire.Bind(new(PersonalizationSource), new(*GraphPersonalizationSource)),
	NewRandomCandidatePool,
	wire.Bind(new(RandomCandidateProvider), new(*RandomCandidatePool)),
	NewTrendingCandidatePool,
	wire.Bind(new(TrendingCandidateProvider), new(*TrendingCandidatePool)),
	NewPersonalizedCandidatePool,
	wire.Bind(new(PersonalizedCandidateProvider), new(*PersonalizedCandidatePool)),
	NewFeedService,
	NewInboxService,
	PoolConfigFromConf,
	FeedDefaultsFromConf,
)
