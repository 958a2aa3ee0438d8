package ioc

import (
	"time"

	ca "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = time.Minute
	cleanupInterval   = 5 * time.Minute
)

func InitGoCache() *ca.Cache {
	return ca.New(defaultExpiration, cleanupInterval)
}
