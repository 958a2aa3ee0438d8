package ioc

import "notification-dispatch/internal/service/channel"

func InitRegistry() *channel.Registry {
	registry, err := channel.NewDefaultRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}
