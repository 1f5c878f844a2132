package handler

import (
	"net/http"

	"github.com/Atheer1324700/Atheer-Sales/internal/api/handler/router"
	"github.com/Atheer1324700/Atheer-Sales/internal/scheduler"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/insighting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/reporting"
	"github.com/Atheer1324700/Atheer-Sales/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(dashboards *reporting.Service, sales *selling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(dashboards, sales),
		},
		{
			Path:    "/v1/dashboard/filter",
			Method:  http.MethodPut,
			Handler: SetFilter(dashboards, sales),
		},
		{
			Path:    "/v1/dashboard/sort",
			Method:  http.MethodPut,
			Handler: ToggleSort(dashboards, sales),
		},
		{
			Path:    "/v1/dashboard/page",
			Method:  http.MethodPut,
			Handler: SetPage(dashboards, sales),
		},
	}
}

func Sales(sales *selling.Service, insights *insighting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(sales, insights),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(sales, insights),
		},
	}
}

func Insights(insights *insighting.Service, sales *selling.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(insights),
		},
		{
			Path:    "/v1/insights/refresh",
			Method:  http.MethodPost,
			Handler: RefreshInsights(insights, sales),
		},
		{
			Path:    "/v1/insights/query",
			Method:  http.MethodPost,
			Handler: AskInsight(insights, sales),
		},
	}
}

func CronJobs(refreshService *scheduler.InsightRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/insight-refresh/run",
			Method:  http.MethodPost,
			Handler: RunInsightRefresh(refreshService),
		},
		{
			Path:    "/v1/cron/insight-refresh/status",
			Method:  http.MethodGet,
			Handler: GetInsightRefreshStatus(refreshService),
		},
	}
}
