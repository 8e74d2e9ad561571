package limiter

import (
	"context"
	"time"
)

// ILimiter 限流器，Allow回傳false表示該請求應被拒絕
type ILimiter interface {
	Allow(ctx context.Context) bool
}

type LimiterConfig struct {
	Key        string
	Capacity   int
	RatePS     float64       // tokens/秒
	RefillRate time.Duration // 補充時間間隔
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Key:        "shopcenter:global",
		Capacity:   100,
		RatePS:     50,
		RefillRate: time.Second,
	}
}
