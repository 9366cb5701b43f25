package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/groupdesk/groupdesk/pkg/cli/config"
	controller "github.com/groupdesk/groupdesk/pkg/controller/http"
	"github.com/groupdesk/groupdesk/pkg/domain/interfaces"
	"github.com/groupdesk/groupdesk/pkg/service/authz"
	"github.com/groupdesk/groupdesk/pkg/service/cache"
	"github.com/groupdesk/groupdesk/pkg/service/notify"
	"github.com/groupdesk/groupdesk/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		directoryCfg config.Directory
		notifyCfg    config.Notify
		authzCfg     config.Authz
		listCfg      config.List
	)

	flags := joinFlags(
		serverCfg.Flags(),
		directoryCfg.Flags(),
		notifyCfg.Flags(),
		authzCfg.Flags(),
		listCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting groupdesk server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("directory", directoryCfg),
			)

			gateway, err := directoryCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if closer, ok := gateway.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			policy, err := authzCfg.Configure(ctx)
			if err != nil {
				return err
			}

			var invalidator interfaces.CacheInvalidator
			if listCfg.CacheSize > 0 {
				cached, err := cache.New(gateway, listCfg.CacheSize)
				if err != nil {
					return goerr.Wrap(err, "failed to create page cache")
				}
				gateway = cached
				invalidator = cached
			}

			logNotify := notify.NewLog()
			groupList := usecase.NewGroupList(
				gateway,
				authz.NewPolicy(policy),
				notifyCfg.Configure(),
				invalidator,
				logNotify,
				listCfg.PageSize,
			)
			defer groupList.Close()

			server := controller.NewServer(ctx, serverCfg.Addr, groupList)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
