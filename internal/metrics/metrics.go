// Package metrics 暴露 Feed 服务的 Prometheus 指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRollsTotal 统计掷骰命中的池分布（命中，非填充）。
	FeedRollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_rolls_total",
			Help: "Total number of slot rolls, by pool the roll landed in",
		},
		[]string{"pool", "logged_in"},
	)

	// FeedSlotsFilledTotal 统计实际填充的池分布。
	FeedSlotsFilledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_slots_filled_total",
			Help: "Total number of filled slots, by pool that satisfied the slot",
		},
		[]string{"pool"},
	)

	// FeedSlotsUnfilledTotal 统计所有池耗尽导致未填充的槽位。
	FeedSlotsUnfilledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_slots_unfilled_total",
			Help: "Total number of slots left unfilled after pool exhaustion",
		},
	)

	// FeedFallbacksTotal 统计回退链生效的次数（命中池 != 掷骰池）。
	FeedFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fallbacks_total",
			Help: "Total number of slots satisfied by a fallback pool",
		},
		[]string{"rolled_pool", "used_pool"},
	)

	// FeedPoolFetchFailures 统计候选池取数失败（本地降级为空列表）。
	FeedPoolFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pool_fetch_failures_total",
			Help: "Total number of candidate pool fetches degraded to an empty list",
		},
		[]string{"pool"},
	)

	// FeedGenerateDuration 统计一次 Feed 生成耗时。
	FeedGenerateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_generate_duration_seconds",
			Help:    "Feed generation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// InboxEventsTotal 统计 Inbox 事件处理结果。
	InboxEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_inbox_events_total",
			Help: "Total number of inbox events consumed",
		},
		[]string{"event_type", "status"},
	)
)
