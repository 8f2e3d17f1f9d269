package main

import (
	"tyjk-club-backend/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
