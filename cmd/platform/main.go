package main

import (
	"context"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	egoApp := ego.New()

	app, err := InitApp()
	if err != nil {
		elog.Panic("init", elog.FieldErr(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.StartTasks(ctx)

	if err := egoApp.Serve(app.Governor).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
