package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"shoply/global"
	"shoply/initialize"
	"shoply/server"
)

func main() {
	configPath := flag.String("config", "shoply.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Publisher.Start(ctx); err != nil {
		global.Logger.Fatal().Err(err).Msg("scheduler start failed")
	}
	defer app.Publisher.Stop()

	srv := server.NewHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	go func() {
		global.Logger.Info().Str("addr", srv.Addr()).Msg("http server listening")
		if err := srv.Start(); err != nil {
			global.Logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	global.Logger.Info().Msg("shutting down")
	if err := srv.Shutdown(); err != nil {
		global.Logger.Error().Err(err).Msg("shutdown error")
	}
}
