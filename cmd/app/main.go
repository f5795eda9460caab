package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"log"
	"net"
	"net/http"
	"voyage/cmd/fx/config_fx"
	"voyage/cmd/fx/controllers_fx"
	"voyage/cmd/fx/memcache_fx"
	"voyage/cmd/fx/planner_fx"
	"voyage/cmd/fx/ratelimit_fx"
	"voyage/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		planner_fx.Module,
		memcache_fx.Module,
		ratelimit_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Printf("Starting HTTP server at %s (mode=%s, base=%q)", srv.Addr, cfg.Mode, cfg.BasePath)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
