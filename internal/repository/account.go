package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository/cache"
	"notification-dispatch/internal/repository/dao"
)

var _ ChannelAccountRepository = (*channelAccountRepository)(nil)

type channelAccountRepository struct {
	dao   dao.ChannelAccountDAO
	cache cache.AccountCache
	// 同一个账号的并发回源合并成一次
	group singleflight.Group

	logger *elog.Component
}

func (repo *channelAccountRepository) Create(ctx context.Context, account domain.ChannelAccount) (domain.ChannelAccount, error) {
	created, err := repo.dao.Create(ctx, repo.toEntity(account))
	if err != nil {
		return domain.ChannelAccount{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *channelAccountRepository) FindByID(ctx context.Context, id int64) (domain.ChannelAccount, error) {
	account, err := repo.cache.Get(ctx, id)
	if err == nil {
		return account, nil
	}

	// 合并后的加载不能因为第一个调用方取消而让其它调用方一起失败
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := repo.group.Do(cache.AccountKey(id), func() (any, error) {
		entity, err1 := repo.dao.FindByID(loadCtx, id)
		if err1 != nil {
			return nil, err1
		}
		res := repo.toDomain(entity)
		if err2 := repo.cache.Set(loadCtx, res); err2 != nil {
			repo.logger.Warn("回写账号缓存失败", elog.FieldErr(err2), elog.Any("id", id))
		}
		return res, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ChannelAccount{}, fmt.Errorf("%w: id = %d", errs.ErrAccountNotFound, id)
		}
		return domain.ChannelAccount{}, err
	}
	return v.(domain.ChannelAccount), nil
}

func (repo *channelAccountRepository) FindByChannel(ctx context.Context, channel domain.Channel) ([]domain.ChannelAccount, error) {
	entities, err := repo.dao.FindByChannel(ctx, channel.Int32())
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.ChannelAccount) domain.ChannelAccount {
		return repo.toDomain(src)
	}), nil
}

func (repo *channelAccountRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.dao.Delete(ctx, id); err != nil {
		return err
	}
	return repo.cache.Del(ctx, id)
}

func (repo *channelAccountRepository) toDomain(src dao.ChannelAccount) domain.ChannelAccount {
	return domain.ChannelAccount{
		ID:      src.ID,
		Name:    src.Name,
		Channel: domain.Channel(src.SendChannel),
		Config:  src.AccountConfig,
		Ctime:   src.Ctime,
		Utime:   src.Utime,
	}
}

func (repo *channelAccountRepository) toEntity(src domain.ChannelAccount) dao.ChannelAccount {
	return dao.ChannelAccount{
		ID:            src.ID,
		Name:          src.Name,
		SendChannel:   src.Channel.Int32(),
		AccountConfig: src.Config,
		Ctime:         src.Ctime,
		Utime:         src.Utime,
	}
}

func NewChannelAccountRepository(d dao.ChannelAccountDAO, c cache.AccountCache) ChannelAccountRepository {
	return &channelAccountRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}
