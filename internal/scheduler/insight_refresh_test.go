package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atheer1324700/Atheer-Sales/internal/config"
	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

type fakeSource struct {
	sales []domain.Sale
}

func (f *fakeSource) All() []domain.Sale { return f.sales }

type fakeOverviewer struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeOverviewer) Overview(_ context.Context, _ []domain.Sale) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}

	return "تحليل", f.err
}

func (f *fakeOverviewer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		InsightRefresh: config.InsightRefresh{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestInsightRefreshService_RunNow(t *testing.T) {
	ctx := context.Background()

	t.Run("executa a análise sobre a coleção atual", func(t *testing.T) {
		overviewer := &fakeOverviewer{}
		service := NewInsightRefreshService(
			&fakeSource{sales: []domain.Sale{{ID: "sale_1"}}},
			overviewer,
			newTestConfig(true),
		)

		service.RunNow(ctx)

		assert.Equal(t, 1, overviewer.callCount())

		running, startedAt, finishedAt := service.Status()
		assert.False(t, running)
		assert.False(t, startedAt.IsZero())
		assert.False(t, finishedAt.IsZero())
	})

	t.Run("coleção vazia não chama o modelo", func(t *testing.T) {
		overviewer := &fakeOverviewer{}
		service := NewInsightRefreshService(&fakeSource{}, overviewer, newTestConfig(true))

		service.RunNow(ctx)

		assert.Equal(t, 0, overviewer.callCount())
	})

	t.Run("falha da análise não derruba o agendador", func(t *testing.T) {
		overviewer := &fakeOverviewer{err: errors.New("quota exceeded")}
		service := NewInsightRefreshService(
			&fakeSource{sales: []domain.Sale{{ID: "sale_1"}}},
			overviewer,
			newTestConfig(true),
		)

		service.RunNow(ctx)

		running, _, _ := service.Status()
		assert.False(t, running)
	})

	t.Run("execução concorrente é ignorada enquanto outra está em andamento", func(t *testing.T) {
		overviewer := &fakeOverviewer{
			block:   make(chan struct{}),
			started: make(chan struct{}, 1),
		}
		service := NewInsightRefreshService(
			&fakeSource{sales: []domain.Sale{{ID: "sale_1"}}},
			overviewer,
			newTestConfig(true),
		)

		done := make(chan struct{})
		go func() {
			service.RunNow(ctx)
			close(done)
		}()

		<-overviewer.started

		running, _, _ := service.Status()
		assert.True(t, running)

		// A segunda chamada retorna imediatamente sem chamar o modelo
		service.RunNow(ctx)
		assert.Equal(t, 1, overviewer.callCount())

		close(overviewer.block)
		<-done
	})
}

func TestInsightRefreshService_Start(t *testing.T) {
	t.Run("desabilitado por configuração não agenda nada", func(t *testing.T) {
		overviewer := &fakeOverviewer{}
		service := NewInsightRefreshService(&fakeSource{}, overviewer, newTestConfig(false))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 0, overviewer.callCount())
	})

	t.Run("cron inválido retorna erro", func(t *testing.T) {
		cfg := newTestConfig(true)
		cfg.InsightRefresh.CronSchedule = "não é cron"

		service := NewInsightRefreshService(&fakeSource{}, &fakeOverviewer{}, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)
		require.Error(t, err)
	})
}
