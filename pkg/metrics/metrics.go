// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集应用和系统指标.
//
// Example:
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	metrics.RequestCounter.WithLabelValues("GET", "/api/v1/chemicals").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeisme/labvault/pkg/configs"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// EntityCounter 实体创建/删除计数器，按实体类型和动作区分.
	EntityCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labvault_entity_actions_total",
			Help: "Total number of entity mutations by type and action",
		},
		[]string{"entity_type", "action"},
	)

	// ImportCounter 批量导入计数，按目标与结果区分.
	ImportCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labvault_batch_imports_total",
			Help: "Total number of spreadsheet batch imports by target and outcome",
		},
		[]string{"target", "outcome"},
	)

	// ImportRejectedRows 批量导入被拒绝的数据行数.
	ImportRejectedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labvault_batch_import_rejected_rows_total",
			Help: "Total number of spreadsheet rows rejected during batch import",
		},
		[]string{"target"},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()
)

// InitMetrics 初始化Metrics.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	// 注册标准收集器
	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 注册自定义指标
	registry.MustRegister(RequestCounter, RequestDuration, EntityCounter, ImportCounter, ImportRejectedRows)

	return nil
}

// StartMetricsServer 注册Metrics HTTP端点.
func StartMetricsServer(config configs.MetricsConfig, engine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 如果启用pprof，注册pprof端点
	if config.Pprof {
		engine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}
