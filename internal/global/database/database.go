package database

import (
	"context"
	"fmt"
	"time"

	"tyjk-club-backend/config"
	"tyjk-club-backend/internal/model"
	"tyjk-club-backend/tools"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// requestTimeout 对所有数据库调用生效的兜底超时
const requestTimeout = 5 * time.Second

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.UserProfile{},
	&model.Application{},
	&model.Project{},
	// 在这里添加其他模型
}

// Init 按配置选择数据库驱动并建立连接，后端在启动时确定一次
func Init() *gorm.DB {
	cfg := config.Get().Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		panic(fmt.Sprintf("不支持的数据库驱动: %s", cfg.Driver))
	}

	gormConfig := &gorm.Config{}
	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(dialector, gormConfig)
	tools.PanicOnErr(err)

	tools.PanicOnErr(db.AutoMigrate(autoMigrateModels...))
	return db
}

// Context 派生带超时的上下文，避免外部存储调用无限期挂起
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, requestTimeout)
}
