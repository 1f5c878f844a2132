package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Atheer1324700/Atheer-Sales/internal/config"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// Overviewer é o recorte do serviço de insights usado pelo agendador.
type Overviewer interface {
	Overview(ctx context.Context, sales []domain.Sale) (string, error)
}

// RecordSource fornece a coleção atual de vendas.
type RecordSource interface {
	All() []domain.Sale
}

// InsightRefreshService reexecuta a análise geral do painel em um cron,
// para que o dashboard abra com um insight recente sem esperar o modelo.
type InsightRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.InsightRefresh

	source   RecordSource
	insights Overviewer

	refreshMutex      sync.Mutex
	refreshRunning    bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewInsightRefreshService(
	source RecordSource,
	insights Overviewer,
	appConfig *config.Config,
) *InsightRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.InsightRefresh.CronSchedule,
		"enabled":       appConfig.InsightRefresh.Enabled,
	}).Info("Configuração do agendador de atualização de insights carregada")

	return &InsightRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.InsightRefresh,
		source:    source,
		insights:  insights,
	}
}

// Start inicia o agendador
func (s *InsightRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a atualização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma atualização imediata, ignorando a chamada se outra
// ainda estiver em andamento.
func (s *InsightRefreshService) RunNow(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de insights já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRunFinishedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	sales := s.source.All()
	if len(sales) == 0 {
		logrus.Info("Coleção de vendas vazia, pulando atualização de insights")
		return
	}

	if _, err := s.insights.Overview(ctx, sales); err != nil {
		logrus.WithError(err).Warn("Atualização periódica de insights não aplicada")
		return
	}

	logrus.WithField("records", len(sales)).Info("Insight geral atualizado pelo agendador")
}

// Status informa se há uma atualização em andamento e os horários da última
// execução.
func (s *InsightRefreshService) Status() (running bool, startedAt, finishedAt time.Time) {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()
	return s.refreshRunning, s.lastRunStartedAt, s.lastRunFinishedAt
}
