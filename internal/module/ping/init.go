package ping

import (
	"tyjk-club-backend/internal/module"
)

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init(deps *module.Deps) {}
