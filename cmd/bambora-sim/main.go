package main

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"github.com/jonanatree/bambora-sim/gateway"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	cfg, err := gateway.LoadConfig()
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}

	app := gateway.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	app.Shutdown()
}
