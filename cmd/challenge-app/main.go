package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/kubegrade/kubegrade/internal/challengeapp"
)

func main() {
	cfg := challengeapp.FromEnv()
	logger := log.New(os.Stdout, "challenge-app ", log.LstdFlags)

	srv := challengeapp.NewServer(cfg, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Printf("starting %s on %s (env: %s)", cfg.AppName, addr, cfg.Env)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
