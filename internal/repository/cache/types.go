package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notification-dispatch/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	AccountPrefix      = "channel_account"
	DefaultExpiredTime = time.Minute
)

// AccountCache 渠道账号缓存，缓存的是解密后的账号，只允许放在进程内
type AccountCache interface {
	Get(ctx context.Context, id int64) (domain.ChannelAccount, error)
	Set(ctx context.Context, account domain.ChannelAccount) error
	Del(ctx context.Context, id int64) error
}

func AccountKey(id int64) string {
	return fmt.Sprintf("%s:%d", AccountPrefix, id)
}
