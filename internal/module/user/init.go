package user

import (
	"log/slog"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/module"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleUser struct {
	db          *gorm.DB
	activityLog *activitylog.Logger
}

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init(deps *module.Deps) {
	log = logger.New("User")
	u.db = deps.DB
	u.activityLog = deps.ActivityLog
}
