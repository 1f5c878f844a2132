package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
	"github.com/Atheer1324700/Atheer-Sales/pkg/utils"
)

func TestSummarize(t *testing.T) {
	day := domain.NewDate(2024, time.May, 10)

	t.Run("acumula receita, unidades e clientes distintos", func(t *testing.T) {
		sales := []domain.Sale{
			{ID: "s1", Date: day, Revenue: decimal.NewFromInt(100), UnitsSold: 2, Customer: domain.Customer{ID: "c1"}},
			{ID: "s2", Date: day, Revenue: decimal.NewFromInt(200), UnitsSold: 3, Customer: domain.Customer{ID: "c2"}},
			{ID: "s3", Date: day, Revenue: decimal.NewFromInt(300), UnitsSold: 1, Customer: domain.Customer{ID: "c1"}},
		}

		summary := Summarize(sales)

		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(600)))
		assert.Equal(t, 6, summary.TotalUnits)
		assert.Equal(t, 2, summary.DistinctCustomers)
		assert.True(t, summary.AvgSaleValue.Equal(decimal.NewFromInt(200)))
	})

	t.Run("média de duas vendas de 100 e 200", func(t *testing.T) {
		sales := []domain.Sale{
			{ID: "s1", Date: day, Revenue: decimal.NewFromInt(100), Customer: domain.Customer{ID: "c1"}},
			{ID: "s2", Date: day, Revenue: decimal.NewFromInt(200), Customer: domain.Customer{ID: "c2"}},
		}

		summary := Summarize(sales)

		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(300)))
		assert.True(t, summary.AvgSaleValue.Equal(decimal.NewFromInt(150)))
	})

	t.Run("subconjunto vazio produz resumo zerado", func(t *testing.T) {
		summary := Summarize(nil)

		assert.True(t, summary.TotalRevenue.IsZero())
		assert.Equal(t, 0, summary.TotalUnits)
		assert.Equal(t, 0, summary.DistinctCustomers)
		assert.True(t, summary.AvgSaleValue.IsZero())
	})

	t.Run("soma de valores monetários não acumula erro binário", func(t *testing.T) {
		half := decimal.RequireFromString("50.00")
		sales := []domain.Sale{
			{ID: "s1", Date: day, Revenue: half, Customer: domain.Customer{ID: "c1"}},
			{ID: "s2", Date: day, Revenue: half, Customer: domain.Customer{ID: "c1"}},
		}

		summary := Summarize(sales)

		assert.Equal(t, "100.00", utils.FormatMoney(summary.TotalRevenue))
	})
}

func TestRevenueByRegion(t *testing.T) {
	day := domain.NewDate(2024, time.May, 10)

	sales := []domain.Sale{
		{ID: "s1", Date: day, Region: "الرياض", Revenue: decimal.NewFromInt(100)},
		{ID: "s2", Date: day, Region: "جدة", Revenue: decimal.NewFromInt(50)},
		{ID: "s3", Date: day, Region: "الرياض", Revenue: decimal.NewFromInt(25)},
	}

	got := RevenueByRegion(sales)

	require.Len(t, got, 2)

	// As regiões aparecem na ordem em que foram vistas
	assert.Equal(t, "الرياض", got[0].Region)
	assert.True(t, got[0].Revenue.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, "جدة", got[1].Region)
	assert.True(t, got[1].Revenue.Equal(decimal.NewFromInt(50)))
}

func TestUnitsByCategory(t *testing.T) {
	day := domain.NewDate(2024, time.May, 10)

	sales := []domain.Sale{
		{ID: "s1", Date: day, Category: "إلكترونيات", UnitsSold: 2},
		{ID: "s2", Date: day, Category: "أثاث", UnitsSold: 5},
		{ID: "s3", Date: day, Category: "إلكترونيات", UnitsSold: 3},
	}

	got := UnitsByCategory(sales)

	require.Len(t, got, 2)
	assert.Equal(t, "إلكترونيات", got[0].Category)
	assert.Equal(t, 5, got[0].Units)
	assert.Equal(t, "أثاث", got[1].Category)
	assert.Equal(t, 5, got[1].Units)
}

func TestRevenueSeries(t *testing.T) {
	t.Run("agrupa por dia e ordena cronologicamente", func(t *testing.T) {
		d1 := domain.NewDate(2024, time.May, 10)
		d2 := domain.NewDate(2024, time.May, 12)

		sales := []domain.Sale{
			{ID: "s1", Date: d2, Revenue: decimal.NewFromInt(30)},
			{ID: "s2", Date: d1, Revenue: decimal.NewFromInt(10)},
			{ID: "s3", Date: d1, Revenue: decimal.NewFromInt(20)},
		}

		got := RevenueSeries(sales)

		require.Len(t, got, 2)
		assert.Equal(t, d1, got[0].Date)
		assert.True(t, got[0].Revenue.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, d2, got[1].Date)
		assert.True(t, got[1].Revenue.Equal(decimal.NewFromInt(30)))
	})

	t.Run("mantém apenas os dias mais recentes", func(t *testing.T) {
		start := domain.NewDate(2024, time.January, 1)

		sales := make([]domain.Sale, 0, RevenueSeriesLimit+10)
		for i := 0; i < RevenueSeriesLimit+10; i++ {
			sales = append(sales, domain.Sale{
				ID:      "s",
				Date:    start.AddDays(i),
				Revenue: decimal.NewFromInt(1),
			})
		}

		got := RevenueSeries(sales)

		require.Len(t, got, RevenueSeriesLimit)
		assert.Equal(t, start.AddDays(10), got[0].Date)
		assert.Equal(t, start.AddDays(RevenueSeriesLimit+9), got[len(got)-1].Date)
	})

	t.Run("rótulo usa o mês em árabe com dígitos latinos", func(t *testing.T) {
		sales := []domain.Sale{
			{ID: "s1", Date: domain.NewDate(2024, time.March, 5), Revenue: decimal.NewFromInt(1)},
		}

		got := RevenueSeries(sales)

		require.Len(t, got, 1)
		assert.Equal(t, "5 مارس", got[0].Label)
	})
}
