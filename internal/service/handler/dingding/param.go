package dingding

import (
	"encoding/json"
	"errors"

	"notification-dispatch/internal/domain"
)

const (
	MsgTypeText     = "text"
	MsgTypeMarkdown = "markdown"
	MsgTypeLink     = "link"
)

// Message 机器人消息体，新增消息类型只需要新增一个实现
type Message interface {
	MsgType() string
}

type TextMessage struct {
	Content string `json:"content"`
}

func (TextMessage) MsgType() string { return MsgTypeText }

type MarkdownMessage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (MarkdownMessage) MsgType() string { return MsgTypeMarkdown }

type LinkMessage struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	MessageURL string `json:"messageUrl"`
	PicURL     string `json:"picUrl,omitempty"`
}

func (LinkMessage) MsgType() string { return MsgTypeLink }

type At struct {
	AtUserIDs []string `json:"atUserIds"`
	IsAtAll   bool     `json:"isAtAll"`
}

// Param 请求体，序列化成 {"msgtype":"text","at":{...},"text":{...}}
type Param struct {
	At      At
	Message Message
}

func (p Param) MarshalJSON() ([]byte, error) {
	if p.Message == nil {
		return nil, errors.New("钉钉消息体为空")
	}
	msgType := p.Message.MsgType()
	at := p.At
	if at.AtUserIDs == nil {
		at.AtUserIDs = []string{}
	}
	return json.Marshal(map[string]any{
		"msgtype": msgType,
		"at":      at,
		msgType:   p.Message,
	})
}

// AssembleParam 根据内容模型的 sendType 组装消息，默认是文本消息
func AssembleParam(target Target, content domain.DingDingContentModel) Param {
	var msg Message
	switch content.SendType {
	case domain.DingDingSendTypeMarkdown:
		msg = MarkdownMessage{Title: content.Title, Text: content.Content}
	case domain.DingDingSendTypeLink:
		msg = LinkMessage{
			Title:      content.Title,
			Text:       content.Content,
			MessageURL: content.URL,
			PicURL:     content.PicURL,
		}
	default:
		msg = TextMessage{Content: content.Content}
	}
	return Param{
		At: At{
			AtUserIDs: target.UserIDs,
			IsAtAll:   target.AtAll,
		},
		Message: msg,
	}
}
