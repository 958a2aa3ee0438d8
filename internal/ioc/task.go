package ioc

import "notification-dispatch/internal/event/task"

func InitTasks(c *task.Consumer) []Task {
	return []Task{
		c,
	}
}
