package reporting

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

// RevenueSeriesLimit é o número máximo de pontos da série temporal de
// receita exibida no gráfico.
const RevenueSeriesLimit = 30

// Summarize reduz um subconjunto de vendas para os KPIs do dashboard. A
// receita é acumulada com precisão total; um subconjunto vazio produz um
// resumo todo zerado, nunca uma divisão por zero.
func Summarize(sales []domain.Sale) domain.Summary {
	summary := domain.Summary{
		TotalRevenue: decimal.Zero,
		AvgSaleValue: decimal.Zero,
	}

	customers := make(map[string]struct{})
	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.Revenue)
		summary.TotalUnits += sale.UnitsSold
		customers[sale.Customer.ID] = struct{}{}
	}

	summary.DistinctCustomers = len(customers)

	if len(sales) > 0 {
		summary.AvgSaleValue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
	}

	return summary
}

// RevenueByRegion soma a receita por região. As chaves aparecem na ordem em
// que foram vistas na entrada, para que o gráfico seja estável entre
// renderizações.
func RevenueByRegion(sales []domain.Sale) []domain.RegionRevenue {
	index := make(map[string]int)
	out := make([]domain.RegionRevenue, 0)

	for _, sale := range sales {
		i, ok := index[sale.Region]
		if !ok {
			i = len(out)
			index[sale.Region] = i
			out = append(out, domain.RegionRevenue{Region: sale.Region, Revenue: decimal.Zero})
		}
		out[i].Revenue = out[i].Revenue.Add(sale.Revenue)
	}

	return out
}

// UnitsByCategory soma as unidades vendidas por categoria, na ordem em que
// cada categoria foi vista na entrada.
func UnitsByCategory(sales []domain.Sale) []domain.CategoryUnits {
	index := make(map[string]int)
	out := make([]domain.CategoryUnits, 0)

	for _, sale := range sales {
		i, ok := index[sale.Category]
		if !ok {
			i = len(out)
			index[sale.Category] = i
			out = append(out, domain.CategoryUnits{Category: sale.Category})
		}
		out[i].Units += sale.UnitsSold
	}

	return out
}

// RevenueSeries agrupa a receita por dia de calendário e devolve os
// RevenueSeriesLimit dias mais recentes em ordem cronológica.
func RevenueSeries(sales []domain.Sale) []domain.RevenuePoint {
	index := make(map[domain.Date]int)
	points := make([]domain.RevenuePoint, 0)

	for _, sale := range sales {
		i, ok := index[sale.Date]
		if !ok {
			i = len(points)
			index[sale.Date] = i
			points = append(points, domain.RevenuePoint{
				Date:    sale.Date,
				Label:   shortDateLabel(sale.Date),
				Revenue: decimal.Zero,
			})
		}
		points[i].Revenue = points[i].Revenue.Add(sale.Revenue)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	if len(points) > RevenueSeriesLimit {
		points = points[len(points)-RevenueSeriesLimit:]
	}

	return points
}

// Nomes curtos dos meses em árabe, com índice 1..12. O rótulo usa dígitos
// latinos, igual ao formato "ar-EG-u-nu-latn" usado pelo dashboard.
var arabicMonths = [...]string{
	"",
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

func shortDateLabel(d domain.Date) string {
	return fmt.Sprintf("%d %s", d.Day(), arabicMonths[int(d.Month())])
}
