package domain

import (
	"encoding/json"
	"fmt"

	"notification-dispatch/internal/errs"
)

// ContentKind 内容模型的类型标识，与渠道一一对应
type ContentKind string

const (
	ContentKindIM               ContentKind = "im"
	ContentKindPush             ContentKind = "push"
	ContentKindSMS              ContentKind = "sms"
	ContentKindEmail            ContentKind = "email"
	ContentKindOfficialAccounts ContentKind = "official_accounts"
	ContentKindMiniProgram      ContentKind = "mini_program"
	ContentKindEnterpriseWeChat ContentKind = "enterprise_we_chat"
	ContentKindDingDingRobot    ContentKind = "ding_ding_robot"
)

func (k ContentKind) String() string {
	return string(k)
}

// ContentModel 渠道内容模型，只有本包内定义的类型可以实现
type ContentModel interface {
	ContentKind() ContentKind
	contentModel()
}

// ImContentModel 站内信
type ImContentModel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	ImgURL  string `json:"imgUrl,omitempty"`
	URL     string `json:"url,omitempty"`
}

func (ImContentModel) ContentKind() ContentKind { return ContentKindIM }
func (ImContentModel) contentModel() {}

// PushContentModel 通知栏
type PushContentModel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

func (PushContentModel) ContentKind() ContentKind { return ContentKindPush }
func (PushContentModel) contentModel() {}

// SmsContentModel 短信，URL 不为空时拼接到内容末尾
type SmsContentModel struct {
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

func (SmsContentModel) ContentKind() ContentKind { return ContentKindSMS }
func (SmsContentModel) contentModel() {}

// EmailContentModel 邮件
type EmailContentModel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

func (EmailContentModel) ContentKind() ContentKind { return ContentKindEmail }
func (EmailContentModel) contentModel() {}

// OfficialAccountsContentModel 服务号模板消息
type OfficialAccountsContentModel struct {
	Params     map[string]string `json:"map"`
	TemplateID string            `json:"templateId,omitempty"`
	URL        string            `json:"url,omitempty"`
}

func (OfficialAccountsContentModel) ContentKind() ContentKind { return ContentKindOfficialAccounts }
func (OfficialAccountsContentModel) contentModel() {}

// MiniProgramContentModel 小程序订阅消息
type MiniProgramContentModel struct {
	Params     map[string]string `json:"map"`
	TemplateID string            `json:"templateId,omitempty"`
	Page       string            `json:"page,omitempty"`
}

func (MiniProgramContentModel) ContentKind() ContentKind { return ContentKindMiniProgram }
func (MiniProgramContentModel) contentModel() {}

// EnterpriseWeChatContentModel 企业微信应用消息
type EnterpriseWeChatContentModel struct {
	Content string `json:"content"`
}

func (EnterpriseWeChatContentModel) ContentKind() ContentKind { return ContentKindEnterpriseWeChat }
func (EnterpriseWeChatContentModel) contentModel() {}

// DingDingSendType 钉钉机器人消息类型，空值按 text 处理
type DingDingSendType string

const (
	DingDingSendTypeText     DingDingSendType = "text"
	DingDingSendTypeMarkdown DingDingSendType = "markdown"
	DingDingSendTypeLink     DingDingSendType = "link"
)

// DingDingContentModel 钉钉自定义机器人
type DingDingContentModel struct {
	SendType DingDingSendType `json:"sendType,omitempty"`
	Content  string           `json:"content"`
	// Title markdown 和 link 消息使用
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
	PicURL string `json:"picUrl,omitempty"`
}

func (DingDingContentModel) ContentKind() ContentKind { return ContentKindDingDingRobot }
func (DingDingContentModel) contentModel() {}

// DecodeContentModel 按类型标识把 JSON 解码成具体的内容模型
func DecodeContentModel(kind ContentKind, raw []byte) (ContentModel, error) {
	switch kind {
	case ContentKindIM:
		return decodeContent[ImContentModel](raw)
	case ContentKindPush:
		return decodeContent[PushContentModel](raw)
	case ContentKindSMS:
		return decodeContent[SmsContentModel](raw)
	case ContentKindEmail:
		return decodeContent[EmailContentModel](raw)
	case ContentKindOfficialAccounts:
		return decodeContent[OfficialAccountsContentModel](raw)
	case ContentKindMiniProgram:
		return decodeContent[MiniProgramContentModel](raw)
	case ContentKindEnterpriseWeChat:
		return decodeContent[EnterpriseWeChatContentModel](raw)
	case ContentKindDingDingRobot:
		return decodeContent[DingDingContentModel](raw)
	default:
		return nil, fmt.Errorf("%w: 未知的内容类型 %q", errs.ErrInvalidParameter, kind)
	}
}

func decodeContent[T ContentModel](raw []byte) (ContentModel, error) {
	var m T
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	return m, nil
}
