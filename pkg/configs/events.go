package configs

import "github.com/spf13/viper"

// EventsConfig 控制实体事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled bool               `mapstructure:"enabled"` // 总开关
	Entity  EntityEventsConfig `mapstructure:"entity"`
}

// EntityEventsConfig 针对实体领域的事件开关。
type EntityEventsConfig struct {
	Created  bool `mapstructure:"created"`
	Updated  bool `mapstructure:"updated"`
	Deleted  bool `mapstructure:"deleted"`
	Imported bool `mapstructure:"imported"` // 批量导入完成事件
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 实体领域的事件：默认开启最小必要集
	v.SetDefault("events.entity.created", true)
	v.SetDefault("events.entity.deleted", true)
	v.SetDefault("events.entity.imported", true)

	// 更新事件量可能较大，默认关闭
	v.SetDefault("events.entity.updated", false)
}
