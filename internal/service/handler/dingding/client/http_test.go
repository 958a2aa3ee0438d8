package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/errs"
)

func TestBuildURL(t *testing.T) {
	t.Parallel()
	got := BuildURL("https://oapi.dingtalk.com/robot/send?access_token=abc", 1700000000000, "d043yCasNZ%2BKC1N0lrVg%2BAan0gEIKPvRfzRqMlUUwzk%3D")
	assert.Equal(t,
		"https://oapi.dingtalk.com/robot/send?access_token=abc&timestamp=1700000000000&sign=d043yCasNZ%2BKC1N0lrVg%2BAan0gEIKPvRfzRqMlUUwzk%3D",
		got)
}

type capturedReq struct {
	method      string
	contentType string
	body        string
}

func TestHTTPClient_Send(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  int
		body    string
		want    SendResp
		wantErr error
	}{
		{
			name:   "成功",
			status: http.StatusOK,
			body:   `{"errcode":0,"errmsg":"ok"}`,
			want:   SendResp{ErrCode: 0, ErrMsg: "ok"},
		},
		{
			name:   "驼峰字段也能解析",
			status: http.StatusOK,
			body:   `{"errCode":300001,"errMsg":"token invalid"}`,
			want:   SendResp{ErrCode: 300001, ErrMsg: "token invalid"},
		},
		{
			name:    "响应不是JSON",
			status:  http.StatusOK,
			body:    `<html>bad gateway</html>`,
			wantErr: errs.ErrDecodeResponseFailed,
		},
		{
			name:    "缺少errcode",
			status:  http.StatusOK,
			body:    `{"errmsg":"ok"}`,
			wantErr: errs.ErrDecodeResponseFailed,
		},
		{
			name:    "非2xx",
			status:  http.StatusBadGateway,
			body:    `{"errcode":0}`,
			wantErr: errs.ErrSendFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			received := make(chan capturedReq, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				received <- capturedReq{method: r.Method, contentType: r.Header.Get("Content-Type"), body: string(b)}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			resp, err := NewHTTPClient(time.Second).Send(context.Background(), SendReq{
				URL:  server.URL + "/robot/send?access_token=abc",
				Body: []byte(`{"msgtype":"text"}`),
			})
			got := <-received
			assert.Equal(t, http.MethodPost, got.method)
			assert.Equal(t, "application/json", got.contentType)
			assert.Equal(t, `{"msgtype":"text"}`, got.body)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp)
			assert.Equal(t, tc.want.ErrCode == 0, resp.Success())
		})
	}
}

func TestHTTPClient_Send_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		_, _ = w.Write([]byte(`{"errcode":0}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewHTTPClient(time.Minute).Send(ctx, SendReq{URL: server.URL + "?a=b", Body: []byte("{}")})
	assert.ErrorIs(t, err, errs.ErrSendFailed)
}
