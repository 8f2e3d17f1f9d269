package logs

import (
	"log/slog"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/module"
)

var log *slog.Logger

type ModuleLogs struct {
	activityLog *activitylog.Logger
}

func (l *ModuleLogs) GetName() string {
	return "Logs"
}

func (l *ModuleLogs) Init(deps *module.Deps) {
	log = logger.New("Logs")
	l.activityLog = deps.ActivityLog
}
