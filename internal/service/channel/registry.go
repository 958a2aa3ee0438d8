package channel

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/hashicorp/go-multierror"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/errs"
)

// RegistryBuilder 启动阶段收集渠道描述，Build 之后得到不可变的 Registry
type RegistryBuilder struct {
	descriptors []Descriptor
}

func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// Register 注册一个渠道，重复注册在 Build 时统一报错
func (b *RegistryBuilder) Register(code domain.Channel, description string, kind domain.ContentKind, shortName string) *RegistryBuilder {
	b.descriptors = append(b.descriptors, Descriptor{
		Code:        code,
		Description: description,
		ContentKind: kind,
		ShortName:   shortName,
	})
	return b
}

func (b *RegistryBuilder) Build() (*Registry, error) {
	var err error
	byCode := make(map[domain.Channel]Descriptor, len(b.descriptors))
	byShortName := make(map[string]Descriptor, len(b.descriptors))
	for _, d := range b.descriptors {
		if d.Code <= 0 || d.ContentKind == "" || d.ShortName == "" {
			err = multierror.Append(err, fmt.Errorf("%w: 渠道描述不完整 %+v", errs.ErrInvalidParameter, d))
			continue
		}
		if _, ok := byCode[d.Code]; ok {
			err = multierror.Append(err, fmt.Errorf("%w: code = %d", errs.ErrDuplicateChannel, d.Code))
			continue
		}
		if _, ok := byShortName[d.ShortName]; ok {
			err = multierror.Append(err, fmt.Errorf("%w: shortName = %s", errs.ErrDuplicateChannel, d.ShortName))
			continue
		}
		byCode[d.Code] = d
		byShortName[d.ShortName] = d
	}
	if err != nil {
		return nil, err
	}

	sorted := make([]Descriptor, 0, len(byCode))
	for _, d := range byCode {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})
	return &Registry{
		byCode:      byCode,
		byShortName: byShortName,
		sorted:      sorted,
	}, nil
}

// Registry 渠道注册表，构造后只读，并发读不需要加锁
type Registry struct {
	byCode      map[domain.Channel]Descriptor
	byShortName map[string]Descriptor
	sorted      []Descriptor
}

func (r *Registry) ContentKind(code domain.Channel) (domain.ContentKind, error) {
	d, err := r.Descriptor(code)
	if err != nil {
		return "", err
	}
	return d.ContentKind, nil
}

func (r *Registry) Descriptor(code domain.Channel) (Descriptor, error) {
	d, ok := r.byCode[code]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: code = %d", errs.ErrChannelNotFound, code)
	}
	return d, nil
}

func (r *Registry) DescriptorByShortName(shortName string) (Descriptor, error) {
	d, ok := r.byShortName[shortName]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: shortName = %q", errs.ErrChannelNotFound, shortName)
	}
	return d, nil
}

// Descriptors 按编码升序返回所有渠道，返回的是副本
func (r *Registry) Descriptors() []Descriptor {
	res := make([]Descriptor, len(r.sorted))
	copy(res, r.sorted)
	return res
}

// Validate 分发前校验：渠道已注册，且内容模型类型与渠道声明一致
func (r *Registry) Validate(task domain.TaskInfo) error {
	kind, err := r.ContentKind(task.Channel)
	if err != nil {
		return err
	}
	if isNilContent(task.ContentModel) {
		return fmt.Errorf("%w: channel = %d, contentModel 为空", errs.ErrContentModelMismatch, task.Channel)
	}
	if got := task.ContentModel.ContentKind(); got != kind {
		return fmt.Errorf("%w: channel = %d, want = %s, got = %s",
			errs.ErrContentModelMismatch, task.Channel, kind, got)
	}
	return nil
}

// isNilContent 空指针也实现了 ContentModel，调用方法会 panic
func isNilContent(m domain.ContentModel) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// DecodeContent 按渠道声明的类型解码内容模型
func (r *Registry) DecodeContent(code domain.Channel, raw []byte) (domain.ContentModel, error) {
	kind, err := r.ContentKind(code)
	if err != nil {
		return nil, err
	}
	return domain.DecodeContentModel(kind, raw)
}

// NewDefaultRegistry 平台内置的全部渠道
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistryBuilder().
		Register(domain.ChannelIM, "IM(站内信)", domain.ContentKindIM, "im").
		Register(domain.ChannelPush, "push(通知栏)", domain.ContentKindPush, "push").
		Register(domain.ChannelSMS, "sms(短信)", domain.ContentKindSMS, "sms").
		Register(domain.ChannelEmail, "email(邮件)", domain.ContentKindEmail, "email").
		Register(domain.ChannelOfficialAccounts, "OfficialAccounts(服务号)", domain.ContentKindOfficialAccounts, "official_accounts").
		Register(domain.ChannelMiniProgram, "miniProgram(小程序)", domain.ContentKindMiniProgram, "mini_program").
		Register(domain.ChannelEnterpriseWeChat, "EnterpriseWeChat(企业微信)", domain.ContentKindEnterpriseWeChat, "enterprise_we_chat").
		Register(domain.ChannelDingDingRobot, "dingDingRobot(钉钉机器人)", domain.ContentKindDingDingRobot, "ding_ding_robot").
		Build()
}
