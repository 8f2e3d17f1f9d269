package application

import (
	"log/slog"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/global/notify"
	"tyjk-club-backend/internal/module"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleApplication struct {
	db          *gorm.DB
	activityLog *activitylog.Logger
	notifier    *notify.Notifier
}

func (a *ModuleApplication) GetName() string {
	return "Application"
}

func (a *ModuleApplication) Init(deps *module.Deps) {
	log = logger.New("Application")
	a.db = deps.DB
	a.activityLog = deps.ActivityLog
	a.notifier = deps.Notifier
}
