package ratelimit

import (
	"context"
	_ "embed"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:embed lua/slide_window.lua
var slidingWindowLua string

var (
	slidingWindowScript = redis.NewScript(slidingWindowLua)

	_ Limiter = (*SlidingWindow)(nil)
)

const keyPrefix = "dispatch_ratelimit"

// SlidingWindow 窗口内的请求记录在 redis 有序集合里，多个实例共享同一个窗口
type SlidingWindow struct {
	cmd  redis.Cmdable
	rule Rule
	// 同一毫秒内的请求也要是不同的 member
	seq atomic.Int64
	now func() time.Time
}

func (w *SlidingWindow) Limit(ctx context.Context, key string) (bool, error) {
	now := w.now().UnixMilli()
	member := strconv.FormatInt(now, 10) + "-" + strconv.FormatInt(w.seq.Add(1), 10)
	res, err := slidingWindowScript.Run(ctx, w.cmd,
		[]string{windowKey(key), limitedKey(key)},
		w.rule.Interval.Milliseconds(), w.rule.Rate, now, member,
	).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// LastLimited 最近一次被限流的时间，窗口内没有被限流过返回零值
func (w *SlidingWindow) LastLimited(ctx context.Context, key string) (time.Time, error) {
	ms, err := w.cmd.Get(ctx, limitedKey(key)).Int64()
	switch {
	case err == nil:
		return time.UnixMilli(ms), nil
	case errors.Is(err, redis.Nil):
		return time.Time{}, nil
	default:
		return time.Time{}, err
	}
}

func windowKey(key string) string {
	return keyPrefix + ":window:" + key
}

func limitedKey(key string) string {
	return keyPrefix + ":limited:" + key
}

func NewSlidingWindow(cmd redis.Cmdable, rule Rule) *SlidingWindow {
	return &SlidingWindow{
		cmd:  cmd,
		rule: rule,
		now:  time.Now,
	}
}
