package main

import (
	"zimmery/config"
	"zimmery/di"
	"zimmery/shared/logger"
	"zimmery/transport/http"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if !cfg.Configured() {
		http.ServeNotConfigured(cfg)

		return
	}

	server := di.InitializeService()
	server.Serve()
}
