//go:build wireinject

package main

import (
	"github.com/google/wire"
	"notification-dispatch/internal/ioc"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/repository/cache"
	"notification-dispatch/internal/repository/cache/local"
	"notification-dispatch/internal/service/account"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisCmd,
		ioc.InitGoCache,
		ioc.InitRegistry,
	)
	accountSvcSet = wire.NewSet(
		ioc.InitAccountEncryptKey,
		ioc.InitStaticAccounts,
		ioc.InitChannelAccountDAO,
		local.NewLocalCache,
		wire.Bind(new(cache.AccountCache), new(*local.Cache)),
		repository.NewChannelAccountRepository,
		account.NewService,
		wire.Bind(new(account.Service), new(*account.DefaultService)),
	)
	handlerSet = wire.NewSet(
		ioc.InitFlowControlConfig,
		ioc.InitLimiter,
		ioc.InitIdempotencyService,
		ioc.InitDingDingHandler,
		ioc.InitHandlerCollectors,
		ioc.InitDispatcher,
	)
	senderSvcSet = wire.NewSet(
		ioc.InitTaskPool,
		ioc.InitTaskSender,
	)
	taskEventSet = wire.NewSet(
		ioc.InitTaskQueueConfig,
		ioc.InitTaskQueue,
		ioc.InitTaskConsumer,
		ioc.InitTaskProducer,
		ioc.InitTasks,
	)
)

func InitApp() (*ioc.App, error) {
	wire.Build(
		BaseSet,
		accountSvcSet,
		handlerSet,
		senderSvcSet,
		taskEventSet,
		ioc.InitGovernor,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App), nil
}
