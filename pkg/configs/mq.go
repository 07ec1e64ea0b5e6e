package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeNATS    MQType = "nats"
	MQTypeChannel MQType = "channel" // 进程内 gochannel，实验室单机部署的默认选择

	DefaultMQURL         = "localhost:4222"
	DefaultMQClientID    = "labvault-app"
	DefaultMaxReconnects = 5 // 默认最大重连次数
	DefaultReconnectWait = 5 // 默认重连等待时间（秒）
)

// MQConfig 消息队列配置.
type MQConfig struct {
	Type          MQType `mapstructure:"type"           rule:"oneof=nats channel"`
	URL           string `mapstructure:"url"            rule:"omitempty,hostname_port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	ClientID      string `mapstructure:"client_id"`
	MaxReconnects int    `mapstructure:"max_reconnects" rule:"min=0,max=100"`
	ReconnectWait int    `mapstructure:"reconnect_wait" rule:"min=1,max=300"`

	// NATS JetStream 选项
	JetStreamEnabled bool   `mapstructure:"jetstream_enabled"`
	SubjectPrefix    string `mapstructure:"subject_prefix"`
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.type", MQTypeChannel)
	v.SetDefault("mq.url", DefaultMQURL)
	v.SetDefault("mq.user", "")
	v.SetDefault("mq.password", "")
	v.SetDefault("mq.client_id", DefaultMQClientID)
	v.SetDefault("mq.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.jetstream_enabled", false)
	v.SetDefault("mq.subject_prefix", "labvault.")
}
