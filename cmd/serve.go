package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"tpfx-journal/internal/delivery/http"
	"tpfx-journal/internal/repository"
	"tpfx-journal/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the journal HTTP API",
	Run:   Serve,
}

func Serve(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo, err := repository.NewRepository(appDep.cfg, appDep.db.DB, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	services := service.NewService(appDep.cfg, appDep.log, repo, appDep.cache)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services)
	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			return err
		}
		return nil
	})

	if err := services.ReportService.Start(); err != nil {
		log.Fatalf("Failed to start report scheduler: %v", err)
	}

	// Wait for shutdown signal
	<-ctx.Done()
	appDep.log.Info("Shutting down gracefully...")

	services.ReportService.Stop()

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("HTTP server exited with error: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
