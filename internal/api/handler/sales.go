package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/insighting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
	"github.com/Atheer1324700/Atheer-Sales/pkg/apiErrors"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
)

// CreateSale valida e adiciona uma nova venda. Qualquer mutação invalida a
// conversa de insights, que deriva da base de vendas.
func CreateSale(sales *selling.Service, insights *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input selling.SaleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("sales: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		sale, err := sales.CreateSale(r.Context(), input)
		if err != nil {
			if domain.IsValidationError(err) {
				logger.WithError(err).Warn("sales: validation rejected")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("sales: failed to create sale")
			apiErrors.WriteError(w, apiErrors.ErrStorageFailure, err.Error(), nil)
			return
		}

		insights.Invalidate()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(sale); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
		}
	})
}

// DeleteSale remove uma venda por ID. Remover um ID inexistente responde
// sucesso do mesmo jeito: a operação é idempotente.
func DeleteSale(sales *selling.Service, insights *insighting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("sale_id", id).Info("sales: delete requested")

		if err := sales.DeleteSale(r.Context(), id); err != nil {
			logger.WithError(err).Error("sales: failed to delete sale")
			apiErrors.WriteError(w, apiErrors.ErrStorageFailure, err.Error(), nil)
			return
		}

		insights.Invalidate()

		w.WriteHeader(http.StatusNoContent)
	})
}
