package ioc

import "github.com/gotomicro/ego/core/econf"

// unmarshalOptional 配置项不存在时保留默认值
func unmarshalOptional(key string, cfg any) {
	if econf.Get(key) == nil {
		return
	}
	if err := econf.UnmarshalKey(key, cfg); err != nil {
		panic(err)
	}
}
