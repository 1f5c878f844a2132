package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Atheer1324700/Atheer-Sales/internal/api/handler"
	"github.com/Atheer1324700/Atheer-Sales/internal/api/handler/router"
	"github.com/Atheer1324700/Atheer-Sales/internal/config"
	"github.com/Atheer1324700/Atheer-Sales/internal/scheduler"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/insighting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/reporting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
	"github.com/Atheer1324700/Atheer-Sales/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService *reporting.Service,
	salesService *selling.Service,
	insightService *insighting.Service,
	insightRefreshService *scheduler.InsightRefreshService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService, salesService)...),
		router.WithRoutes(handler.Sales(salesService, insightService)...),
		router.WithRoutes(handler.Insights(insightService, salesService)...),
		router.WithRoutes(handler.CronJobs(insightRefreshService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Aguarda sinal de término ou cancelamento do contexto
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
