package domain

// SendStatus 发送状态
type SendStatus string

const (
	SendStatusSucceeded SendStatus = "SUCCEEDED" // 发送成功
	SendStatusFailed    SendStatus = "FAILED"    // 发送失败
)

func (s SendStatus) String() string {
	return string(s)
}

// SendResult 单个任务的发送结果
type SendResult struct {
	MessageID string     `json:"messageId"`
	Channel   Channel    `json:"channel"`
	Status    SendStatus `json:"status"`
	// Err 只有分发前校验失败时才有值
	Err error `json:"-"`
}
