package po

import "time"

// FeedGenerationLog 描述一次 Feed 生成调用的诊断日志。
type FeedGenerationLog struct {
	LogID          string
	UserID         *string
	RequestedSlots int32
	FilledSlots    int32
	LoggedIn       bool
	Rolls          []int32
	SlotSources    []SlotSourceLog
	LatencyMS      *int32
	ErrorKind      *string
	GeneratedAt    time.Time
}

// SlotSourceLog 记录单个槽位的命中信息。
type SlotSourceLog struct {
	PostID string `json:"post_id"`
	Pool   string `json:"pool"`
	Roll   int32  `json:"roll"`
}
