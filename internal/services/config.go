package services

import (
	"errors"
	"fmt"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/google/uuid"
)

// 槽位生成的默认参数，可由调用方或服务配置覆盖。
const (
	DefaultSlots                 = 15
	DefaultLoggedInRandomBelow   = 10
	DefaultLoggedInTrendingBelow = 20
	DefaultLoggedOutRandomBelow  = 30

	DefaultLookbackDays = 30
	DefaultDecayPerDay  = 0.95
	DefaultPoolLimit    = 300
)

// ErrInvalidConfig 表示调用方传入了非法的生成配置。
var ErrInvalidConfig = errors.New("invalid feed generation config")

// Thresholds 描述掷骰值的池边界（上界不含）。
type Thresholds struct {
	Random   int
	Trending int
}

// FeedGenerationConfig 描述一次 Feed 生成的配置。
// 零值字段在调用时合并默认值；ExcludeIDs 预置排除集合（分页场景）。
type FeedGenerationConfig struct {
	Slots               int
	LoggedInThresholds  Thresholds
	LoggedOutThresholds Thresholds
	ExcludeIDs          []uuid.UUID
}

// FeedDefaults 持有服务级默认配置，来自启动配置。
type FeedDefaults struct {
	Config FeedGenerationConfig
}

// FeedDefaultsFromConf 从启动配置构造默认值，零值回退内建默认。
func FeedDefaultsFromConf(c *conf.Feed) FeedDefaults {
	defaults := FeedGenerationConfig{
		Slots: DefaultSlots,
		LoggedInThresholds: Thresholds{
			Random:   DefaultLoggedInRandomBelow,
			Trending: DefaultLoggedInTrendingBelow,
		},
		LoggedOutThresholds: Thresholds{
			Random: DefaultLoggedOutRandomBelow,
		},
	}
	if c == nil {
		return FeedDefaults{Config: defaults}
	}
	if c.Slots > 0 {
		defaults.Slots = c.Slots
	}
	if c.LoggedInRandomBelow > 0 {
		defaults.LoggedInThresholds.Random = c.LoggedInRandomBelow
	}
	if c.LoggedInTrendingBelow > 0 {
		defaults.LoggedInThresholds.Trending = c.LoggedInTrendingBelow
	}
	if c.LoggedOutRandomBelow > 0 {
		defaults.LoggedOutThresholds.Random = c.LoggedOutRandomBelow
	}
	return FeedDefaults{Config: defaults}
}

// normalize 合并默认值并校验，负数槽位视为调用方错误快速失败。
func (c FeedGenerationConfig) normalize(defaults FeedGenerationConfig) (FeedGenerationConfig, error) {
	if c.Slots < 0 {
		return FeedGenerationConfig{}, fmt.Errorf("%w: slots must be positive, got %d", ErrInvalidConfig, c.Slots)
	}
	if c.Slots == 0 {
		c.Slots = defaults.Slots
	}
	if c.LoggedInThresholds.Random == 0 && c.LoggedInThresholds.Trending == 0 {
		c.LoggedInThresholds = defaults.LoggedInThresholds
	}
	if c.LoggedOutThresholds.Random == 0 {
		c.LoggedOutThresholds.Random = defaults.LoggedOutThresholds.Random
	}
	c.LoggedInThresholds.Random = clampThreshold(c.LoggedInThresholds.Random)
	c.LoggedInThresholds.Trending = clampThreshold(c.LoggedInThresholds.Trending)
	c.LoggedOutThresholds.Random = clampThreshold(c.LoggedOutThresholds.Random)
	// trending 边界不得低于 random 边界，否则热门池区间为空。
	if c.LoggedInThresholds.Trending < c.LoggedInThresholds.Random {
		c.LoggedInThresholds.Trending = c.LoggedInThresholds.Random
	}
	return c, nil
}

func clampThreshold(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// PoolConfig 描述候选池取数与打分参数。
type PoolConfig struct {
	LookbackDays int
	DecayPerDay  float64
	Limit        int32
}

// PoolConfigFromConf 从启动配置构造池参数，零值回退内建默认。
func PoolConfigFromConf(c *conf.Feed) PoolConfig {
	cfg := PoolConfig{
		LookbackDays: DefaultLookbackDays,
		DecayPerDay:  DefaultDecayPerDay,
		Limit:        DefaultPoolLimit,
	}
	if c == nil {
		return cfg
	}
	if c.LookbackDays > 0 {
		cfg.LookbackDays = c.LookbackDays
	}
	if c.DecayPerDay > 0 && c.DecayPerDay <= 1 {
		cfg.DecayPerDay = c.DecayPerDay
	}
	if c.PoolLimit > 0 {
		cfg.Limit = int32(c.PoolLimit)
	}
	return cfg
}
