package errs

import "errors"

// 校验类错误，分发前由调用方通过渠道注册表拦截
var (
	ErrInvalidParameter     = errors.New("参数错误")
	ErrChannelNotFound      = errors.New("渠道不存在")
	ErrContentModelMismatch = errors.New("内容模型与渠道不匹配")
	ErrNoAvailableHandler   = errors.New("无可用的渠道处理器")
	ErrDuplicateChannel     = errors.New("渠道重复注册")
)

// 发送过程中的错误，只在处理器内部流转，最终转换成 false + 日志
var (
	ErrAccountNotFound      = errors.New("渠道账号不存在")
	ErrSignFailed           = errors.New("计算签名失败")
	ErrSendFailed           = errors.New("发送请求失败")
	ErrDecodeResponseFailed = errors.New("解析响应失败")
	ErrRateLimited          = errors.New("触发限流")
)
