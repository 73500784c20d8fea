package po

import (
	"strings"
	"time"
)

// FeedGenerationLogParams 描述构造生成日志所需的参数。
type FeedGenerationLogParams struct {
	UserID         string
	RequestedSlots int
	FilledSlots    int
	LoggedIn       bool
	Rolls          []int32
	SlotSources    []SlotSourceLog
	LatencyMS      int32
	ErrorKind      string
	GeneratedAt    time.Time
}

// NewFeedGenerationLog 基于参数构造 FeedGenerationLog 实例。
func NewFeedGenerationLog(params FeedGenerationLogParams) FeedGenerationLog {
	entry := FeedGenerationLog{
		UserID:         optionalString(params.UserID),
		RequestedSlots: int32(params.RequestedSlots),
		FilledSlots:    int32(params.FilledSlots),
		LoggedIn:       params.LoggedIn,
		Rolls:          cloneInt32s(params.Rolls),
		SlotSources:    cloneSlotSources(params.SlotSources),
		LatencyMS:      optionalInt32(params.LatencyMS),
		GeneratedAt:    params.GeneratedAt,
	}
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now().UTC()
	}
	if kind := strings.TrimSpace(params.ErrorKind); kind != "" {
		entry.ErrorKind = &kind
	}
	return entry
}

func cloneSlotSources(src []SlotSourceLog) []SlotSourceLog {
	if len(src) == 0 {
		return []SlotSourceLog{}
	}
	dst := make([]SlotSourceLog, len(src))
	copy(dst, src)
	return dst
}

func cloneInt32s(src []int32) []int32 {
	if len(src) == 0 {
		return []int32{}
	}
	dst := make([]int32, len(src))
	copy(dst, src)
	return dst
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalInt32(value int32) *int32 {
	if value <= 0 {
		return nil
	}
	return &value
}
