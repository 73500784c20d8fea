package services

import "github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"

// minSamplingWeight 是采样权重下限：零分候选仍保留非零中签概率，
// 属于刻意的公平性/多样性决策。
const minSamplingWeight = 0.1

// WeightedSampler 在候选列表内做权重轮盘赌抽样（非 top-N）。
type WeightedSampler struct {
	rng RollSource
}

// NewWeightedSampler 构造 WeightedSampler。
func NewWeightedSampler(rng RollSource) *WeightedSampler {
	return &WeightedSampler{rng: rng}
}

// Sample 按 max(0.1, score) 的权重抽取一个候选。
// 空列表返回 nil；单候选直接返回（无论分数）。
func (s *WeightedSampler) Sample(candidates []vo.ScoredItem) *vo.ScoredItem {
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		picked := candidates[0]
		return &picked
	}
	var total float64
	for i := range candidates {
		total += samplingWeight(candidates[i].Score)
	}
	draw := s.rng.Float64() * total
	var acc float64
	for i := range candidates {
		acc += samplingWeight(candidates[i].Score)
		if acc > draw {
			picked := candidates[i]
			return &picked
		}
	}
	// 浮点累加误差兜底。
	picked := candidates[len(candidates)-1]
	return &picked
}

func samplingWeight(score float64) float64 {
	if score < minSamplingWeight {
		return minSamplingWeight
	}
	return score
}
