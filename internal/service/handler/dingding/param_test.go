package dingding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notification-dispatch/internal/domain"
)

func TestAssembleParam(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		target  Target
		content domain.DingDingContentModel
		want    string
	}{
		{
			name:    "文本消息@指定用户",
			target:  Target{UserIDs: []string{"u1", "u2"}},
			content: domain.DingDingContentModel{Content: "服务告警"},
			want:    `{"msgtype":"text","at":{"atUserIds":["u1","u2"],"isAtAll":false},"text":{"content":"服务告警"}}`,
		},
		{
			name:    "文本消息@所有人",
			target:  Target{AtAll: true, UserIDs: []string{}},
			content: domain.DingDingContentModel{SendType: domain.DingDingSendTypeText, Content: "hi"},
			want:    `{"msgtype":"text","at":{"atUserIds":[],"isAtAll":true},"text":{"content":"hi"}}`,
		},
		{
			name:    "空接收者",
			target:  Target{},
			content: domain.DingDingContentModel{Content: "hi"},
			want:    `{"msgtype":"text","at":{"atUserIds":[],"isAtAll":false},"text":{"content":"hi"}}`,
		},
		{
			name:    "markdown消息",
			target:  Target{AtAll: true, UserIDs: []string{}},
			content: domain.DingDingContentModel{SendType: domain.DingDingSendTypeMarkdown, Title: "日报", Content: "# 今日发送 100 条"},
			want:    `{"msgtype":"markdown","at":{"atUserIds":[],"isAtAll":true},"markdown":{"title":"日报","text":"# 今日发送 100 条"}}`,
		},
		{
			name:   "link消息",
			target: Target{UserIDs: []string{"u1"}},
			content: domain.DingDingContentModel{
				SendType: domain.DingDingSendTypeLink,
				Title:    "发布公告",
				Content:  "新版本上线",
				URL:      "https://example.com/release",
				PicURL:   "https://example.com/a.png",
			},
			want: `{"msgtype":"link","at":{"atUserIds":["u1"],"isAtAll":false},"link":{"title":"发布公告","text":"新版本上线","messageUrl":"https://example.com/release","picUrl":"https://example.com/a.png"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(AssembleParam(tc.target, tc.content))
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestParam_MarshalJSON_NilMessage(t *testing.T) {
	t.Parallel()
	_, err := json.Marshal(Param{})
	assert.Error(t, err)
}
