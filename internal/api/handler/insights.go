package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/insighting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
	"github.com/Atheer1324700/Atheer-Sales/pkg/apiErrors"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
)

func writeInsightState(w http.ResponseWriter, r *http.Request, insights *insighting.Service) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(insights.State()); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("insights: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetInsights devolve o estado atual do painel de insights: análise geral,
// transcrição da conversa e estado de erro.
func GetInsights(insights *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeInsightState(w, r, insights)
	})
}

// RefreshInsights regenera a análise geral a partir da coleção atual. A
// falha do modelo degrada para a mensagem padrão dentro do próprio estado.
func RefreshInsights(insights *insighting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights: refreshing overview")

		if _, err := insights.Overview(r.Context(), sales.All()); err != nil {
			if errors.Is(err, insighting.ErrStaleResponse) {
				logger.Debug("insights: refresh superseded by a newer request")
			} else {
				logger.WithError(err).Error("insights: failed to refresh overview")
				apiErrors.WriteError(w, apiErrors.ErrInsightUnavailable, err.Error(), nil)
				return
			}
		}

		writeInsightState(w, r, insights)
	})
}

// AskInsight responde uma pergunta livre sobre os dados de vendas.
func AskInsight(insights *insighting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		_, err := insights.Ask(r.Context(), sales.All(), body.Question)
		if err != nil {
			switch {
			case domain.IsValidationError(err):
				apiErrors.WriteError(w, apiErrors.ErrEmptyQuestion, err.Error(), nil)
				return
			case errors.Is(err, insighting.ErrStaleResponse):
				logger.Debug("insights: answer superseded by a newer request")
			default:
				// O erro também fica registrado no estado do painel; o
				// reenvio é por iniciativa do usuário
				logger.WithError(err).Error("insights: failed to answer question")
				apiErrors.WriteError(w, apiErrors.ErrInsightUnavailable, err.Error(), nil)
				return
			}
		}

		writeInsightState(w, r, insights)
	})
}
