package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/reporting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
	"github.com/Atheer1324700/Atheer-Sales/pkg/apiErrors"
	"github.com/Atheer1324700/Atheer-Sales/pkg/log"
	"github.com/Atheer1324700/Atheer-Sales/pkg/utils"
)

// kpiResponse carrega os KPIs já formatados para exibição: os valores
// monetários são arredondados para duas casas apenas aqui.
type kpiResponse struct {
	TotalRevenue      string `json:"totalRevenue"`
	TotalUnits        int    `json:"totalUnits"`
	DistinctCustomers int    `json:"distinctCustomers"`
	AvgSaleValue      string `json:"avgSaleValue"`
}

type regionResponse struct {
	Region  string `json:"region"`
	Revenue string `json:"revenue"`
}

type seriesPointResponse struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Revenue string `json:"revenue"`
}

type dashboardResponse struct {
	Window           string                 `json:"window"`
	FilteredCount    int                    `json:"filteredCount"`
	Kpis             kpiResponse            `json:"kpis"`
	ByRegion         []regionResponse       `json:"byRegion"`
	ByCategory       []domain.CategoryUnits `json:"byCategory"`
	RevenueSeries    []seriesPointResponse  `json:"revenueSeries"`
	Table            reporting.TablePage    `json:"table"`
	PendingMutations int                    `json:"pendingMutations"`
}

func buildDashboardResponse(snapshot reporting.Snapshot, pending int) dashboardResponse {
	regions := make([]regionResponse, 0, len(snapshot.ByRegion))
	for _, entry := range snapshot.ByRegion {
		regions = append(regions, regionResponse{
			Region:  entry.Region,
			Revenue: utils.FormatMoney(entry.Revenue),
		})
	}

	series := make([]seriesPointResponse, 0, len(snapshot.RevenueSeries))
	for _, point := range snapshot.RevenueSeries {
		series = append(series, seriesPointResponse{
			Date:    point.Date.String(),
			Label:   point.Label,
			Revenue: utils.FormatMoney(point.Revenue),
		})
	}

	return dashboardResponse{
		Window:        snapshot.Window,
		FilteredCount: snapshot.FilteredCount,
		Kpis: kpiResponse{
			TotalRevenue:      utils.FormatMoney(snapshot.Summary.TotalRevenue),
			TotalUnits:        snapshot.Summary.TotalUnits,
			DistinctCustomers: snapshot.Summary.DistinctCustomers,
			AvgSaleValue:      utils.FormatMoney(snapshot.Summary.AvgSaleValue),
		},
		ByRegion:         regions,
		ByCategory:       snapshot.ByCategory,
		RevenueSeries:    series,
		Table:            snapshot.Table,
		PendingMutations: pending,
	}
}

func writeDashboard(w http.ResponseWriter, r *http.Request, dashboards *reporting.Service, sales *selling.Service) {
	response := buildDashboardResponse(dashboards.Snapshot(), sales.Pending())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetDashboard devolve o snapshot completo do dashboard.
func GetDashboard(dashboards *reporting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDashboard(w, r, dashboards, sales)
	})
}

// SetFilter troca a janela de datas ativa e devolve o snapshot atualizado.
func SetFilter(dashboards *reporting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body struct {
			Window string `json:"window"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		window, err := reporting.ParseWindow(body.Window)
		if err != nil {
			logger.WithField("window", body.Window).Warn("dashboard: invalid window parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dashboards.SetWindow(window)
		logger.WithField("window", window.String()).Info("dashboard: filter window changed")

		writeDashboard(w, r, dashboards, sales)
	})
}

// ToggleSort aplica o clique de ordenação da tabela e devolve o snapshot
// atualizado.
func ToggleSort(dashboards *reporting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body struct {
			Field string `json:"field"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		field, err := reporting.ParseSortField(body.Field)
		if err != nil {
			logger.WithField("field", body.Field).Warn("dashboard: invalid sort field")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		state := dashboards.ToggleSort(field)
		logger.WithFields(log.Fields{
			"field":     state.Field,
			"direction": state.Direction,
		}).Info("dashboard: sort toggled")

		writeDashboard(w, r, dashboards, sales)
	})
}

// SetPage navega a tabela para a página pedida e devolve o snapshot
// atualizado. Páginas fora dos limites são ajustadas, nunca rejeitadas.
func SetPage(dashboards *reporting.Service, sales *selling.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Page int `json:"page"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", nil)
			return
		}

		dashboards.SetPage(body.Page)

		writeDashboard(w, r, dashboards, sales)
	})
}
