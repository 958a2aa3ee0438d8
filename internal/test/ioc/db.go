package ioc

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"notification-dispatch/internal/repository/dao"
)

const dsn = "root:root@tcp(localhost:13316)/notification?collation=utf8mb4_general_ci&parseTime=True&loc=Local&timeout=1s&readTimeout=3s&writeTimeout=3s&multiStatements=true&interpolateParams=true&charset=utf8mb4"

var (
	db         *egorm.Component
	dbErr      error
	initDBOnce sync.Once
)

func ping(sqlDB *sql.DB) error {
	const maxInterval = 2 * time.Second
	const maxRetries = 3
	strategy, err := retry.NewExponentialBackoffRetryStrategy(100*time.Millisecond, maxInterval, maxRetries)
	if err != nil {
		return err
	}

	const timeout = time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		time.Sleep(next)
	}
}

// InitDBAndTables 连接测试库并建表，数据库不可用时返回错误，由调用方决定是否跳过
func InitDBAndTables() (*egorm.Component, error) {
	initDBOnce.Do(func() {
		sqlDB, err := sql.Open("mysql", dsn)
		if err != nil {
			dbErr = err
			return
		}
		defer sqlDB.Close()
		if dbErr = ping(sqlDB); dbErr != nil {
			return
		}

		econf.Set("mysql", map[string]any{
			"dsn":   dsn,
			"debug": true,
		})
		db = egorm.Load("mysql").Build()
		dbErr = dao.InitTables(db)
	})
	return db, dbErr
}
