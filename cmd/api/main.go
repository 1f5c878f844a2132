package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Atheer1324700/Atheer-Sales/infrastructure/database/postgres"
	"github.com/Atheer1324700/Atheer-Sales/infrastructure/integrator/gemini"
	"github.com/Atheer1324700/Atheer-Sales/infrastructure/storage"
	"github.com/Atheer1324700/Atheer-Sales/internal/api"
	"github.com/Atheer1324700/Atheer-Sales/internal/config"
	"github.com/Atheer1324700/Atheer-Sales/internal/scheduler"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/insighting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/reporting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newStore(ctx, cfg)

	salesService := selling.NewService(
		store,
		cfg.Sales.SeedCount,
		selling.SleepDelayer(cfg.Sales.MutationDelay),
	)
	if err := salesService.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os registros de vendas")
	}

	dashboardService := reporting.NewService(salesService)

	geminiClient := gemini.NewClient(cfg)
	insightService := insighting.NewService(geminiClient)

	insightRefreshService := scheduler.NewInsightRefreshService(salesService, insightService, cfg)
	if err := insightRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de insights")
	} else {
		logrus.Info("Agendador de atualização de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		salesService,
		insightService,
		insightRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newStore seleciona o mecanismo de persistência conforme a configuração
func newStore(ctx context.Context, cfg *config.Config) storage.Store {
	switch cfg.Storage.Driver {
	case "postgres":
		conn := pgconn(ctx, cfg.Database)
		return storage.NewPostgresStore(conn, cfg.Storage.Slot)
	default:
		logrus.WithField("path", cfg.Storage.Path).Info("Utilizando armazenamento em arquivo")
		return storage.NewFileStore(cfg.Storage.Path)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
