package channel

import "notification-dispatch/internal/domain"

// Descriptor 对外暴露的渠道描述
type Descriptor = domain.ChannelDescriptor
