package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/metrics"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// FeedService 是槽位生成的主用例：对每个槽位独立掷骰选池，
// 池内按权重抽样，跨槽位去重，池耗尽走回退链。
// 单次调用内无跨槽并发（槽 i+1 必须观察到槽 i 的排除集更新），
// 三个候选池在槽处理前并行预取一次。调用之间无共享可变状态。
type FeedService struct {
	random       RandomCandidateProvider
	trending     TrendingCandidateProvider
	personalized PersonalizedCandidateProvider
	chain        *FallbackChain
	rng          RollSource
	defaults     FeedDefaults
	feedLogs     FeedLogStore
	log          *log.Helper
}

// NewFeedService 构造 FeedService。
func NewFeedService(
	random RandomCandidateProvider,
	trending TrendingCandidateProvider,
	personalized PersonalizedCandidateProvider,
	chain *FallbackChain,
	rng RollSource,
	defaults FeedDefaults,
	feedLogs FeedLogStore,
	logger log.Logger,
) *FeedService {
	return &FeedService{
		random:       random,
		trending:     trending,
		personalized: personalized,
		chain:        chain,
		rng:          rng,
		defaults:     defaults,
		feedLogs:     feedLogs,
		log:          log.NewHelper(logger),
	}
}

// GenerateFeed 生成一次 Feed。userID 为 nil 表示未登录路径。
// 池稀薄时返回的条目可能少于配置槽位数，这是正常结果而非失败。
func (s *FeedService) GenerateFeed(ctx context.Context, userID *uuid.UUID, cfg FeedGenerationConfig) (*vo.FeedResponse, error) {
	started := time.Now()
	cfg, err := cfg.normalize(s.defaults.Config)
	if err != nil {
		return nil, err
	}
	loggedIn := userID != nil

	excluded := make(map[uuid.UUID]struct{}, len(cfg.ExcludeIDs)+cfg.Slots)
	for _, id := range cfg.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	pools := s.fetchPools(ctx, userID)

	rolls := make([]int, 0, cfg.Slots)
	rollCounts := make(map[vo.PoolName]int)
	posts := make([]vo.SlotResult, 0, cfg.Slots)
	for i := 0; i < cfg.Slots; i++ {
		roll := s.rng.Intn(100)
		rolls = append(rolls, roll)
		rolled := SelectPool(roll, loggedIn, cfg)
		rollCounts[rolled]++
		metrics.FeedRollsTotal.WithLabelValues(string(rolled), strconv.FormatBool(loggedIn)).Inc()

		picked := s.chain.SelectFromPool(rolled, excluded, pools)
		if picked == nil {
			metrics.FeedSlotsUnfilledTotal.Inc()
			continue
		}
		if picked.Pool != rolled {
			metrics.FeedFallbacksTotal.WithLabelValues(string(rolled), string(picked.Pool)).Inc()
		}
		metrics.FeedSlotsFilledTotal.WithLabelValues(string(picked.Pool)).Inc()
		posts = append(posts, vo.SlotResult{Item: picked.Item, Pool: picked.Pool, Roll: roll})
		excluded[picked.Item.PostID] = struct{}{}
	}

	resp := &vo.FeedResponse{
		Posts: posts,
		Stats: vo.FeedStats{
			Slots:       cfg.Slots,
			Filled:      len(posts),
			RollCounts:  rollCounts,
			Rolls:       rolls,
			LoggedIn:    loggedIn,
			ExpectedPct: expectedDistribution(loggedIn, cfg),
		},
		GeneratedAt: time.Now().UTC(),
	}
	latency := time.Since(started)
	metrics.FeedGenerateDuration.Observe(latency.Seconds())
	s.recordLog(ctx, userID, cfg, resp, latency)
	return resp, nil
}

// fetchPools 并行预取三个候选池，槽处理开始前汇合。
// 未登录时跳过个性化池（视为空）。
func (s *FeedService) fetchPools(ctx context.Context, userID *uuid.UUID) *CandidatePools {
	pools := &CandidatePools{}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pools.Random = s.random.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		pools.Trending = s.trending.Fetch(ctx)
	}()
	if userID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pools.Personalized = s.personalized.Fetch(ctx, *userID)
		}()
	}
	wg.Wait()
	return pools
}

// expectedDistribution 返回配置阈值对应的理论池分布百分比，仅用于诊断。
func expectedDistribution(loggedIn bool, cfg FeedGenerationConfig) map[vo.PoolName]float64 {
	if loggedIn {
		return map[vo.PoolName]float64{
			vo.PoolRandom:       float64(cfg.LoggedInThresholds.Random),
			vo.PoolTrending:     float64(cfg.LoggedInThresholds.Trending - cfg.LoggedInThresholds.Random),
			vo.PoolPersonalized: float64(100 - cfg.LoggedInThresholds.Trending),
		}
	}
	return map[vo.PoolName]float64{
		vo.PoolRandom:   float64(cfg.LoggedOutThresholds.Random),
		vo.PoolTrending: float64(100 - cfg.LoggedOutThresholds.Random),
	}
}

// recordLog 尽力而为地持久化生成日志，失败只记警告。
func (s *FeedService) recordLog(ctx context.Context, userID *uuid.UUID, cfg FeedGenerationConfig, resp *vo.FeedResponse, latency time.Duration) {
	if s.feedLogs == nil {
		return
	}
	rolls := make([]int32, len(resp.Stats.Rolls))
	for i, roll := range resp.Stats.Rolls {
		rolls[i] = int32(roll)
	}
	sources := make([]po.SlotSourceLog, len(resp.Posts))
	for i, post := range resp.Posts {
		sources[i] = po.SlotSourceLog{
			PostID: post.Item.PostID.String(),
			Pool:   string(post.Pool),
			Roll:   int32(post.Roll),
		}
	}
	var user string
	if userID != nil {
		user = userID.String()
	}
	entry := po.NewFeedGenerationLog(po.FeedGenerationLogParams{
		UserID:         user,
		RequestedSlots: cfg.Slots,
		FilledSlots:    resp.Stats.Filled,
		LoggedIn:       resp.Stats.LoggedIn,
		Rolls:          rolls,
		SlotSources:    sources,
		LatencyMS:      int32(latency.Milliseconds()),
		GeneratedAt:    resp.GeneratedAt,
	})
	if _, err := s.feedLogs.Insert(ctx, nil, entry); err != nil {
		s.log.WithContext(ctx).Warnw("msg", "insert feed generation log failed", "error", err)
	}
}
