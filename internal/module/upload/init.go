package upload

import (
	"log/slog"

	"tyjk-club-backend/internal/global/activitylog"
	"tyjk-club-backend/internal/global/logger"
	"tyjk-club-backend/internal/global/storage"
	"tyjk-club-backend/internal/module"
)

var log *slog.Logger

type ModuleUpload struct {
	storage     storage.Storage
	activityLog *activitylog.Logger
}

func (u *ModuleUpload) GetName() string {
	return "Upload"
}

func (u *ModuleUpload) Init(deps *module.Deps) {
	log = logger.New("Upload")
	u.storage = deps.Storage
	u.activityLog = deps.ActivityLog
}
