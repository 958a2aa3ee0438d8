package dingding

import "notification-dispatch/internal/domain"

// Target 机器人消息的 @ 对象
type Target struct {
	AtAll   bool
	UserIDs []string
}

// ResolveTarget 只看第一个接收者是不是 ALL，后面的元素忽略
func ResolveTarget(receiver []string) Target {
	if len(receiver) > 0 && receiver[0] == domain.SendAll {
		return Target{AtAll: true, UserIDs: []string{}}
	}
	ids := make([]string, len(receiver))
	copy(ids, receiver)
	return Target{UserIDs: ids}
}
