package project

import (
	"log/slog"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/module"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleProject struct {
	db          *gorm.DB
	activityLog *activitylog.Logger
}

func (p *ModuleProject) GetName() string {
	return "Project"
}

func (p *ModuleProject) Init(deps *module.Deps) {
	log = logger.New("Project")
	p.db = deps.DB
	p.activityLog = deps.ActivityLog
}
