// Package main - Entry point for the agency site server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziyabeey1-ai/mysite/api"
	"github.com/ziyabeey1-ai/mysite/db"
	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Fatal("load config", zap.Error(err))
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	// Lead store is optional; the site runs without it
	var leads *db.LeadStore
	if cfg.Database.Path != "" {
		conn, err := db.Open(cfg.Database.Path)
		if err != nil {
			logging.Warn("lead store unavailable", zap.Error(err))
		} else {
			defer conn.Close()
			if err := db.Migrate(conn); err != nil {
				logging.Fatal("migrate lead store", zap.Error(err))
			}
			leads = db.NewLeadStore(conn)
		}
	}

	apiServer := api.NewServer(version, cfg, leads)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))
	mux.Handle("/", http.FileServer(http.Dir(cfg.Server.UIPath)))

	logging.Info("server starting",
		zap.String("addr", cfg.Server.Addr),
		zap.String("version", version))

	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
