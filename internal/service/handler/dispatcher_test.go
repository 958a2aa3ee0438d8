package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
	"notification-dispatch/internal/service/channel"
	handlermocks "notification-dispatch/internal/service/handler/mocks"
)

func TestNewDispatcher(t *testing.T) {
	t.Parallel()

	registry, err := channel.NewDefaultRegistry()
	require.NoError(t, err)

	tests := []struct {
		name     string
		handlers func(ctrl *gomock.Controller) []Handler
		wantErr  error
	}{
		{
			name: "创建成功",
			handlers: func(ctrl *gomock.Controller) []Handler {
				h := handlermocks.NewMockHandler(ctrl)
				h.EXPECT().Channel().Return(domain.ChannelDingDingRobot)
				return []Handler{h}
			},
		},
		{
			name: "处理器渠道未注册",
			handlers: func(ctrl *gomock.Controller) []Handler {
				h := handlermocks.NewMockHandler(ctrl)
				h.EXPECT().Channel().Return(domain.Channel(11))
				return []Handler{h}
			},
			wantErr: errs.ErrChannelNotFound,
		},
		{
			name: "处理器渠道重复",
			handlers: func(ctrl *gomock.Controller) []Handler {
				h1 := handlermocks.NewMockHandler(ctrl)
				h1.EXPECT().Channel().Return(domain.ChannelSMS)
				h2 := handlermocks.NewMockHandler(ctrl)
				h2.EXPECT().Channel().Return(domain.ChannelSMS)
				return []Handler{h1, h2}
			},
			wantErr: errs.ErrDuplicateChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d, err := NewDispatcher(registry, tt.handlers(ctrl)...)
			assert.ErrorIs(t, err, tt.wantErr)
			if err != nil {
				assert.Nil(t, d)
			}
		})
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	registry, err := channel.NewDefaultRegistry()
	require.NoError(t, err)

	dingTask := domain.TaskInfo{
		MessageID:    "m-1",
		Channel:      domain.ChannelDingDingRobot,
		Receiver:     []string{"u1"},
		SendAccount:  1,
		ContentModel: domain.DingDingContentModel{Content: "hello"},
	}

	tests := []struct {
		name    string
		task    domain.TaskInfo
		setup   func(h *handlermocks.MockHandler)
		wantOK  bool
		wantErr error
	}{
		{
			name: "处理成功",
			task: dingTask,
			setup: func(h *handlermocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), dingTask).Return(true)
			},
			wantOK: true,
		},
		{
			name: "处理失败",
			task: dingTask,
			setup: func(h *handlermocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), dingTask).Return(false)
			},
		},
		{
			name: "未知渠道",
			task: domain.TaskInfo{
				Channel:      domain.Channel(81),
				ContentModel: domain.DingDingContentModel{Content: "hello"},
			},
			setup:   func(h *handlermocks.MockHandler) {},
			wantErr: errs.ErrChannelNotFound,
		},
		{
			name: "内容模型不匹配",
			task: domain.TaskInfo{
				Channel:      domain.ChannelDingDingRobot,
				ContentModel: domain.EmailContentModel{Title: "t", Content: "c"},
			},
			setup:   func(h *handlermocks.MockHandler) {},
			wantErr: errs.ErrContentModelMismatch,
		},
		{
			name: "渠道没有处理器",
			task: domain.TaskInfo{
				Channel:      domain.ChannelSMS,
				ContentModel: domain.SmsContentModel{Content: "c"},
			},
			setup:   func(h *handlermocks.MockHandler) {},
			wantErr: errs.ErrNoAvailableHandler,
		},
		{
			name: "内容模型是空指针",
			task: domain.TaskInfo{
				Channel:      domain.ChannelDingDingRobot,
				ContentModel: (*domain.DingDingContentModel)(nil),
			},
			setup:   func(h *handlermocks.MockHandler) {},
			wantErr: errs.ErrContentModelMismatch,
		},
		{
			name: "处理器panic",
			task: dingTask,
			setup: func(h *handlermocks.MockHandler) {
				h.EXPECT().Handle(gomock.Any(), dingTask).DoAndReturn(func(context.Context, domain.TaskInfo) bool {
					panic("limiter broken")
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := handlermocks.NewMockHandler(ctrl)
			h.EXPECT().Channel().Return(domain.ChannelDingDingRobot)
			tt.setup(h)

			d, err := NewDispatcher(registry, h)
			require.NoError(t, err)
			assert.Equal(t, []domain.Channel{domain.ChannelDingDingRobot}, d.Channels())

			ok, err := d.Dispatch(t.Context(), tt.task)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
