package server

import (
	"context"
	"fmt"
	"log/slog"

	"tyjk-club-backend/config"
	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/database"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/global/middleware"
	"tyjk-club-backend/internal/global/notify"
	"tyjk-club-backend/internal/global/storage"
	"tyjk-club-backend/internal/module"
	"tyjk-club-backend/internal/module/application"
	"tyjk-club-backend/internal/module/logs"
	"tyjk-club-backend/internal/module/ping"
	"tyjk-club-backend/internal/module/project"
	"tyjk-club-backend/internal/module/upload"
	"tyjk-club-backend/internal/module/user"
	"tyjk-club-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var log *slog.Logger

// Init 构造全部依赖并初始化各模块
func Init() {
	config.Init()
	log = logger.New("Server")

	deps := &module.Deps{
		DB:          database.Init(),
		Storage:     newStorage(),
		ActivityLog: activitylog.New(config.Get().ActivityLog.MaxEntries, newLogStore()),
		Notifier:    notify.New(config.Get().Notify.WebhookURL),
	}

	module.Register(
		&ping.ModulePing{},
		&user.ModuleUser{},
		&application.ModuleApplication{},
		&project.ModuleProject{},
		&upload.ModuleUpload{},
		&logs.ModuleLogs{},
	)

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init(deps)
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	// 本地存储后端时直接静态托管上传目录
	if config.Get().Storage.Backend == "local" {
		r.Static("/uploads", config.Get().Storage.Home)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}

// newStorage 按配置选定文件存储后端，部署时确定一次
func newStorage() storage.Storage {
	cfg := config.Get()
	switch cfg.Storage.Backend {
	case "s3":
		st, err := storage.NewS3(context.Background(), cfg.S3)
		tools.PanicOnErr(err)
		return st
	default:
		return storage.NewLocal(cfg.Storage.Home, cfg.Storage.BaseURL)
	}
}

// newLogStore 按配置选定活动日志持久化后端
func newLogStore() activitylog.Store {
	cfg := config.Get()
	switch cfg.ActivityLog.Store {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return activitylog.NewRedisStore(client, cfg.ActivityLog.RedisKey)
	default:
		return activitylog.NewFileStore(cfg.ActivityLog.FilePath)
	}
}
