// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/labvault/pkg/api"
	"github.com/yeisme/labvault/pkg/configs"
	"github.com/yeisme/labvault/pkg/internal/jobs"
	"github.com/yeisme/labvault/pkg/internal/model"
	"github.com/yeisme/labvault/pkg/internal/storage"
	"github.com/yeisme/labvault/pkg/log"
	"github.com/yeisme/labvault/pkg/metrics"
	"github.com/yeisme/labvault/pkg/middleware"
	"github.com/yeisme/labvault/pkg/scheduler"
)

type App struct {
	Engine    *gin.Engine
	Scheduler *scheduler.Scheduler
	config    *configs.AppConfig
	storage   *storage.Manager
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 建表
	if err := model.AutoMigrate(manager.GetDBClient().GetDB()); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	// 定时任务：操作日志清理、孤儿附件清理
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		middleware.AuthMiddleware(config.Auth),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.PrometheusMiddleware(),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
		gzip.Gzip(gzip.DefaultCompression),
	)

	api.RegisterGroup(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:    engine,
		Scheduler: sched,
		config:    config,
		storage:   manager,
	}
}

// Run 启动调度器与 HTTP 服务，阻塞直到服务退出.
func (a *App) Run() error {
	a.Scheduler.Start()

	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown 停止调度器并关闭存储资源.
func (a *App) Shutdown() error {
	if err := a.Scheduler.Stop(); err != nil {
		log.Logger().Warn().Err(err).Msg("scheduler stop failed")
	}

	if a.storage != nil && a.storage.GetMQClient() != nil {
		return a.storage.GetMQClient().Close()
	}

	return nil
}
