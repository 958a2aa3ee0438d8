package repository

import (
	"context"

	"notification-dispatch/internal/domain"
)

// ChannelAccountRepository 渠道账号仓储接口
//
//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks ChannelAccountRepository
type ChannelAccountRepository interface {
	// Create 创建账号
	Create(ctx context.Context, account domain.ChannelAccount) (domain.ChannelAccount, error)
	// FindByID 根据ID查找账号，不存在返回 errs.ErrAccountNotFound
	FindByID(ctx context.Context, id int64) (domain.ChannelAccount, error)
	// FindByChannel 查找指定渠道的所有账号
	FindByChannel(ctx context.Context, channel domain.Channel) ([]domain.ChannelAccount, error)
	// Delete 删除账号
	Delete(ctx context.Context, id int64) error
}
