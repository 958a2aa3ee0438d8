package domain

import "encoding/json"

// SendAll 广播哨兵，receiver 第一个元素是它时表示发给所有人
const SendAll = "ALL"

// TaskInfo 一次下发任务，由上游分发链路构造，处理器只读
type TaskInfo struct {
	MessageTemplateID int64        `json:"messageTemplateId"`
	BusinessID        int64        `json:"businessId"`
	MessageID         string       `json:"messageId"`
	Channel           Channel      `json:"sendChannel"`
	Receiver          []string     `json:"receiver"`
	SendAccount       int64        `json:"sendAccount"`
	ContentModel      ContentModel `json:"contentModel"`
}

// String 日志里打印任务使用
func (t TaskInfo) String() string {
	b, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return string(b)
}
