package ioc

import (
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"notification-dispatch/internal/repository/dao"
	"notification-dispatch/internal/service/account"
)

// AccountEncryptKey 渠道账号配置的加密密钥
type AccountEncryptKey string

func InitAccountEncryptKey() AccountEncryptKey {
	type Config struct {
		Key string `yaml:"key"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("account.encrypt", &cfg); err != nil {
		panic(err)
	}
	return AccountEncryptKey(cfg.Key)
}

// InitStaticAccounts 配置文件里的账号，数据库查不到时使用
func InitStaticAccounts() account.StaticAccounts {
	cfg := account.StaticAccounts{}
	unmarshalOptional("account.static", &cfg)
	return cfg
}

func InitChannelAccountDAO(db *egorm.Component, key AccountEncryptKey) dao.ChannelAccountDAO {
	return dao.NewChannelAccountDAO(db, string(key))
}
