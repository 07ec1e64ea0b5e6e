package configs

import "github.com/spf13/viper"

const (
	DefaultAuditRetentionDays = 365 // 操作日志默认保留天数
)

// AuditConfig 操作日志（action log）相关配置.
type AuditConfig struct {
	RetentionDays int `mapstructure:"retention_days" rule:"min=1"` // 保留天数，过期记录由定时任务清理
}

func (c *AuditConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("audit.retention_days", DefaultAuditRetentionDays)
}
