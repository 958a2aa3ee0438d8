package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gotomicro/ego/core/elog"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/service/channel"
)

var _ Service = (*DefaultService)(nil)

// DefaultService 先查数据库里的账号，查不到再看静态配置
type DefaultService struct {
	repo     repository.ChannelAccountRepository
	registry *channel.Registry
	static   StaticAccounts

	logger *elog.Component
}

func (s *DefaultService) FindConfig(ctx context.Context, sendAccount int64, accountKey, prefix string) (string, error) {
	cfg, err := s.findFromRepo(ctx, sendAccount, prefix)
	switch {
	case err == nil:
		return cfg, nil
	case !errors.Is(err, errs.ErrAccountNotFound):
		return "", err
	}
	return s.findFromStatic(sendAccount, accountKey, prefix)
}

func (s *DefaultService) findFromRepo(ctx context.Context, sendAccount int64, prefix string) (string, error) {
	if s.repo == nil {
		return "", errs.ErrAccountNotFound
	}
	acc, err := s.repo.FindByID(ctx, sendAccount)
	if err != nil {
		return "", err
	}
	desc, err := s.registry.Descriptor(acc.Channel)
	if err != nil || desc.ShortName+"_" != prefix {
		// 账号存在但不属于这个渠道，按不存在处理
		s.logger.Warn("渠道账号与渠道不匹配",
			elog.Any("sendAccount", sendAccount),
			elog.String("prefix", prefix),
			elog.Any("channel", acc.Channel))
		return "", fmt.Errorf("%w: sendAccount = %d, prefix = %s", errs.ErrAccountNotFound, sendAccount, prefix)
	}
	return acc.Config, nil
}

func (s *DefaultService) findFromStatic(sendAccount int64, accountKey, prefix string) (string, error) {
	name := prefix + strconv.FormatInt(sendAccount, 10)
	for _, group := range s.static[accountKey] {
		v, ok := group[name]
		if !ok {
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("%w: 静态账号配置格式错误, name = %s, %w", errs.ErrAccountNotFound, name, err)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("%w: accountKey = %s, name = %s", errs.ErrAccountNotFound, accountKey, name)
}

// NewService repo 可以为 nil，此时只使用静态配置
func NewService(repo repository.ChannelAccountRepository, registry *channel.Registry, static StaticAccounts) *DefaultService {
	return &DefaultService{
		repo:     repo,
		registry: registry,
		static:   static,
		logger:   elog.DefaultLogger,
	}
}
