// Package configs 管理应用程序配置，包括数据库、对象存储、消息队列等配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AppVersion 应用版本号.
const AppVersion = "1.0.0"

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		DB        DBConfig        `mapstructure:"db"`         // DBConfig 数据库配置
		S3        S3Config        `mapstructure:"s3"`         // S3Config 附件对象存储配置
		MQ        MQConfig        `mapstructure:"mq"`         // MQConfig 事件发布配置
		Server    ServerConfig    `mapstructure:"server"`     // ServerConfig 服务器配置
		Log       LogConfig       `mapstructure:"log"`        // LogConfig 日志相关配置
		Metrics   MetricsConfig   `mapstructure:"metrics"`    // MetricsConfig 监控配置
		Auth      AuthConfig      `mapstructure:"auth"`       // AuthConfig 身份认证配置
		Audit     AuditConfig     `mapstructure:"audit"`      // AuditConfig 操作日志配置
		Events    EventsConfig    `mapstructure:"events"`     // EventsConfig 事件开关
		RateLimit RateLimitConfig `mapstructure:"rate_limit"` // RateLimitConfig 限流配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("LABVAULT")

	// 读取配置；找不到配置文件时退回默认值 + 环境变量
	if err := appViper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig    ServerConfig
		dbConfig        DBConfig
		s3Config        S3Config
		mqConfig        MQConfig
		logConfig       LogConfig
		metricsConfig   MetricsConfig
		authConfig      AuthConfig
		auditConfig     AuditConfig
		eventsConfig    EventsConfig
		rateLimitConfig RateLimitConfig
	)

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	s3Config.setDefaults(v)
	mqConfig.setDefaults(v)
	logConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	authConfig.setDefaults(v)
	auditConfig.setDefaults(v)
	eventsConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
