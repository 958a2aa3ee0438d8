package dao

import "context"

//go:generate mockgen -source=./types.go -destination=./mocks/account.mock.go -package=daomocks ChannelAccountDAO
type ChannelAccountDAO interface {
	// Create 创建渠道账号
	Create(ctx context.Context, account ChannelAccount) (ChannelAccount, error)
	// FindByID 根据ID查找账号，返回的配置已解密
	FindByID(ctx context.Context, id int64) (ChannelAccount, error)
	// FindByChannel 查找指定渠道的所有账号
	FindByChannel(ctx context.Context, sendChannel int32) ([]ChannelAccount, error)
	// Delete 删除账号
	Delete(ctx context.Context, id int64) error
}
