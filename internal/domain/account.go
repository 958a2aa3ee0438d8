package domain

// ChannelAccount 渠道账号，Config 是具体渠道账号的 JSON 配置
type ChannelAccount struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Channel Channel `json:"channel"`
	Config  string  `json:"config"`
	Ctime   int64   `json:"ctime"`
	Utime   int64   `json:"utime"`
}

// DingDingRobotAccount 钉钉自定义机器人账号
type DingDingRobotAccount struct {
	// Webhook 机器人地址，已经带有 access_token 查询参数
	Webhook string `json:"webhook"`
	Secret  string `json:"secret"`
}
