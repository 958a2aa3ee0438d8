package local

import (
	"context"
	"errors"

	ca "github.com/patrickmn/go-cache"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/repository/cache"
)

var _ cache.AccountCache = (*Cache)(nil)

type Cache struct {
	localCache *ca.Cache
}

func (c *Cache) Get(_ context.Context, id int64) (domain.ChannelAccount, error) {
	v, ok := c.localCache.Get(cache.AccountKey(id))
	if !ok {
		return domain.ChannelAccount{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.ChannelAccount)
	if !ok {
		return domain.ChannelAccount{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *Cache) Set(_ context.Context, account domain.ChannelAccount) error {
	c.localCache.Set(cache.AccountKey(account.ID), account, cache.DefaultExpiredTime)
	return nil
}

func (c *Cache) Del(_ context.Context, id int64) error {
	c.localCache.Delete(cache.AccountKey(id))
	return nil
}

func NewLocalCache(localCache *ca.Cache) *Cache {
	return &Cache{
		localCache: localCache,
	}
}
