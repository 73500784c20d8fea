package services

import "github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/vo"

// SelectPool 根据掷骰值与登录态决定槽位尝试的候选池。
// 纯函数：相同输入恒返回相同池。未登录路径不存在个性化池。
func SelectPool(roll int, loggedIn bool, cfg FeedGenerationConfig) vo.PoolName {
	if loggedIn {
		switch {
		case roll < cfg.LoggedInThresholds.Random:
			return vo.PoolRandom
		case roll < cfg.LoggedInThresholds.Trending:
			return vo.PoolTrending
		default:
			return vo.PoolPersonalized
		}
	}
	if roll < cfg.LoggedOutThresholds.Random {
		return vo.PoolRandom
	}
	return vo.PoolTrending
}
