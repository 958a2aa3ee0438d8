package account

import (
	"context"
	"encoding/json"
	"fmt"

	"notification-dispatch/internal/errs"
)

// Service 渠道账号配置查询
//
//go:generate mockgen -source=./types.go -destination=./mocks/account.mock.go -package=accountmocks Service
type Service interface {
	// FindConfig 查找账号的 JSON 配置。accountKey 是静态配置里的分组名，prefix 是渠道前缀，例如 ding_ding_robot_
	FindConfig(ctx context.Context, sendAccount int64, accountKey, prefix string) (string, error)
}

// StaticAccounts 静态账号配置，accountKey -> [{prefix+id: 账号配置}]
type StaticAccounts map[string][]map[string]any

// GetAccount 查找账号配置并解码成具体渠道的账号类型
func GetAccount[T any](ctx context.Context, svc Service, sendAccount int64, accountKey, prefix string) (T, error) {
	var res T
	cfg, err := svc.FindConfig(ctx, sendAccount, accountKey, prefix)
	if err != nil {
		return res, err
	}
	if err = json.Unmarshal([]byte(cfg), &res); err != nil {
		return res, fmt.Errorf("%w: 账号配置格式错误, sendAccount = %d, %w", errs.ErrAccountNotFound, sendAccount, err)
	}
	return res, nil
}
