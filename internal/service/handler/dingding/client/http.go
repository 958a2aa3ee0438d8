package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"notification-dispatch/internal/errs"
)

const (
	DefaultTimeout      = 5 * time.Second
	maxResponseBodySize = 1 << 20
)

var _ Client = (*HTTPClient)(nil)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	doer HTTPDoer
}

func (c *HTTPClient) Send(ctx context.Context, req SendReq) (SendResp, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(httpReq)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: 读取响应失败, %w", errs.ErrSendFailed, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return SendResp{}, fmt.Errorf("%w: status = %d, body = %s", errs.ErrSendFailed, resp.StatusCode, body)
	}
	return decodeResp(body)
}

// decodeResp 字段名大小写不敏感，errCode 也能解析；缺少 errcode 视为解析失败
func decodeResp(body []byte) (SendResp, error) {
	var raw struct {
		ErrCode *int   `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return SendResp{}, fmt.Errorf("%w: body = %s, %w", errs.ErrDecodeResponseFailed, body, err)
	}
	if raw.ErrCode == nil {
		return SendResp{}, fmt.Errorf("%w: 缺少 errcode, body = %s", errs.ErrDecodeResponseFailed, body)
	}
	return SendResp{ErrCode: *raw.ErrCode, ErrMsg: raw.ErrMsg}, nil
}

// NewHTTPClient timeout <= 0 时使用默认的 5 秒
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewHTTPClientWithDoer(&http.Client{Timeout: timeout})
}

func NewHTTPClientWithDoer(doer HTTPDoer) *HTTPClient {
	return &HTTPClient{doer: doer}
}
