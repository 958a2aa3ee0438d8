package domain

import "strconv"

// Channel 发送渠道编码，编码值对外稳定，不可复用
type Channel int32

const (
	ChannelIM               Channel = 10 // 站内信
	ChannelPush             Channel = 20 // 通知栏
	ChannelSMS              Channel = 30 // 短信
	ChannelEmail            Channel = 40 // 邮件
	ChannelOfficialAccounts Channel = 50 // 服务号
	ChannelMiniProgram      Channel = 60 // 小程序
	ChannelEnterpriseWeChat Channel = 70 // 企业微信
	ChannelDingDingRobot    Channel = 80 // 钉钉自定义机器人
)

func (c Channel) Int32() int32 {
	return int32(c)
}

func (c Channel) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ChannelDescriptor 渠道描述，启动时注册，之后只读
type ChannelDescriptor struct {
	Code        Channel     `json:"code"`
	Description string      `json:"description"`
	ContentKind ContentKind `json:"contentKind"`
	// ShortName 英文标识，同时用作账号配置的前缀
	ShortName string `json:"shortName"`
}
