package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egovernor"
	"notification-dispatch/internal/event/task"
)

type Task interface {
	Start(ctx context.Context)
}

type App struct {
	Governor *egovernor.Component
	Tasks    []Task
	// Producer 给同进程的上游投递任务
	Producer task.Producer
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		go func(t Task) {
			t.Start(ctx)
		}(t)
	}
}

func InitGovernor() *egovernor.Component {
	return egovernor.Load("server.governor").Build()
}
