package client

import (
	"context"
	"strconv"
)

//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=clientmocks Client
type Client interface {
	// Send 发起一次 POST 请求，不重试
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	URL  string
	Body []byte
}

// SendResp 钉钉返回 {"errcode":0,"errmsg":"ok"}
type SendResp struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (r SendResp) Success() bool {
	return r.ErrCode == 0
}

// BuildURL webhook 本身已经带有 access_token 参数，所以直接用 & 拼接
func BuildURL(webhook string, timestampMillis int64, sign string) string {
	return webhook + "&timestamp=" + strconv.FormatInt(timestampMillis, 10) + "&sign=" + sign
}
