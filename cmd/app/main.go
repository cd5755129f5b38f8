package main

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/di"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
