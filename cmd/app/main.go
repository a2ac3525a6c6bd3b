package main

import (
	"tourcrm/config"
	"tourcrm/di"
	"tourcrm/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
