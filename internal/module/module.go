package module

import (
	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/notify"
	"tyjk-club-backend/internal/global/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps 各模块共享的依赖，由 server 启动时构造并注入，不使用全局单例
type Deps struct {
	DB          *gorm.DB
	Storage     storage.Storage
	ActivityLog *activitylog.Logger
	Notifier    *notify.Notifier
}

type Module interface {
	GetName() string
	Init(deps *Deps)
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

// Register 注册模块，由 server 在启动时调用
func Register(m ...Module) {
	Modules = append(Modules, m...)
}
