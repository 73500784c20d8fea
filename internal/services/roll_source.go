package services

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRollSource 用互斥锁保护 rand.Rand，FeedService 可能被并发请求共享。
type lockedRollSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRollSource 构造按当前时间播种的随机源。
func NewRollSource() RollSource {
	return &lockedRollSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *lockedRollSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *lockedRollSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
