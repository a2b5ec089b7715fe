package handler

import (
	"net/http"
	"os"
	"shareit/config"
	"shareit/di"
	"shareit/shared/logger"
	"shareit/shared/metrics"
	"shareit/shared/timezone"
	"sync"
)

var (
	once   sync.Once
	server http.Handler
)

// Handler is the serverless entry point. The dependency graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.Configure(cfg, os.Stdout)
		timezone.Init(cfg.App.Timezone)
		metrics.Register()

		server, _ = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
