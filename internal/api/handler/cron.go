package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Atheer1324700/Atheer-Sales/internal/scheduler"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
)

// RunInsightRefresh dispara uma atualização imediata do insight geral em
// background e responde de imediato.
func RunInsightRefresh(service *scheduler.InsightRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("cron: manual insight refresh requested")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			service.RunNow(ctx)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "started"})
	})
}

// GetInsightRefreshStatus informa o estado da última atualização agendada.
func GetInsightRefreshStatus(service *scheduler.InsightRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, finishedAt := service.Status()

		response := map[string]any{
			"running": running,
		}
		if !startedAt.IsZero() {
			response["lastRunStartedAt"] = startedAt.Format(time.RFC3339)
		}
		if !finishedAt.IsZero() {
			response["lastRunFinishedAt"] = finishedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})
}
