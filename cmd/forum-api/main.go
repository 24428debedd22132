package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/opendiscuss/forum/internal/config"
	"github.com/opendiscuss/forum/internal/logger"
	"github.com/opendiscuss/forum/internal/router"
	"github.com/opendiscuss/forum/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("can't initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps, cfg)

	server := &http.Server{
		Addr:         cfg.Public.Address,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	logger.Log.Info("server started", "address", cfg.Public.Address, "storage", cfg.Public.Storage)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
