package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atheer1324700/Atheer-Sales/internal/domain"
)

func TestSortSales(t *testing.T) {
	day := domain.NewDate(2024, time.May, 10)

	sales := []domain.Sale{
		{ID: "s1", Date: day, Product: "لابتوب", Revenue: decimal.NewFromInt(300)},
		{ID: "s2", Date: day.AddDays(1), Product: "جوال", Revenue: decimal.NewFromInt(100)},
		{ID: "s3", Date: day, Product: "جوال", Revenue: decimal.NewFromInt(200)},
	}

	t.Run("ordena por receita ascendente", func(t *testing.T) {
		got := SortSales(sales, SortByRevenue, Ascending)

		require.Len(t, got, 3)
		assert.Equal(t, "s2", got[0].ID)
		assert.Equal(t, "s3", got[1].ID)
		assert.Equal(t, "s1", got[2].ID)
	})

	t.Run("ordena por data descendente", func(t *testing.T) {
		got := SortSales(sales, SortByDate, Descending)

		assert.Equal(t, "s2", got[0].ID)
	})

	t.Run("ordenação estável mantém a ordem relativa de chaves iguais", func(t *testing.T) {
		got := SortSales(sales, SortByDate, Ascending)

		// s1 e s3 compartilham a mesma data; s1 veio primeiro na entrada
		require.Len(t, got, 3)
		assert.Equal(t, "s1", got[0].ID)
		assert.Equal(t, "s3", got[1].ID)
		assert.Equal(t, "s2", got[2].ID)
	})

	t.Run("não altera a coleção de entrada", func(t *testing.T) {
		_ = SortSales(sales, SortByProduct, Ascending)

		assert.Equal(t, "s1", sales[0].ID)
		assert.Equal(t, "s2", sales[1].ID)
		assert.Equal(t, "s3", sales[2].ID)
	})
}

func TestParseSortField(t *testing.T) {
	got, err := ParseSortField("revenue")
	require.NoError(t, err)
	assert.Equal(t, SortByRevenue, got)

	_, err = ParseSortField("cor")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestPaginate(t *testing.T) {
	makeSales := func(n int) []domain.Sale {
		out := make([]domain.Sale, n)
		for i := range out {
			out[i] = domain.Sale{ID: string(rune('a' + i))}
		}
		return out
	}

	tests := []struct {
		name           string
		total          int
		page           int
		wantLen        int
		wantTotalPages int
		wantFirstID    string
	}{
		{name: "primeira página cheia", total: 12, page: 1, wantLen: 5, wantTotalPages: 3, wantFirstID: "a"},
		{name: "última página parcial", total: 12, page: 3, wantLen: 2, wantTotalPages: 3, wantFirstID: "k"},
		{name: "página além do fim é ajustada para a última", total: 12, page: 9, wantLen: 2, wantTotalPages: 3, wantFirstID: "k"},
		{name: "página menor que um é ajustada para a primeira", total: 12, page: 0, wantLen: 5, wantTotalPages: 3, wantFirstID: "a"},
		{name: "coleção vazia ainda tem uma página", total: 0, page: 1, wantLen: 0, wantTotalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, totalPages := Paginate(makeSales(tt.total), PageSize, tt.page)

			assert.Equal(t, tt.wantTotalPages, totalPages)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirstID, got[0].ID)
			}
		})
	}
}

func TestSortStateToggle(t *testing.T) {
	state := DefaultSortState()
	assert.Equal(t, SortByDate, state.Field)
	assert.Equal(t, Descending, state.Direction)

	// Campo novo volta para ascendente
	state.Toggle(SortByRevenue)
	assert.Equal(t, SortByRevenue, state.Field)
	assert.Equal(t, Ascending, state.Direction)

	// Clicar duas vezes no mesmo campo retorna à direção inicial
	state.Toggle(SortByRevenue)
	assert.Equal(t, Descending, state.Direction)
	state.Toggle(SortByRevenue)
	assert.Equal(t, Ascending, state.Direction)
}

type staticSource struct {
	sales []domain.Sale
}

func (s *staticSource) All() []domain.Sale { return s.sales }

func TestServiceSnapshot(t *testing.T) {
	today := domain.Today()

	sales := make([]domain.Sale, 0, 8)
	for i := 0; i < 8; i++ {
		sales = append(sales, domain.Sale{
			ID:        string(rune('a' + i)),
			Date:      today.AddDays(-i),
			Region:    "الرياض",
			Category:  "إلكترونيات",
			Revenue:   decimal.NewFromInt(int64(10 * (i + 1))),
			UnitsSold: 1,
			Customer:  domain.Customer{ID: "c1"},
		})
	}

	service := NewService(&staticSource{sales: sales})

	t.Run("estado inicial", func(t *testing.T) {
		snapshot := service.Snapshot()

		assert.Equal(t, "all", snapshot.Window)
		assert.Equal(t, 8, snapshot.FilteredCount)
		assert.Equal(t, 1, snapshot.Table.Page)
		assert.Equal(t, 2, snapshot.Table.TotalPages)
		require.Len(t, snapshot.Table.Sales, 5)

		// Ordenação padrão: data descendente, a venda mais recente primeiro
		assert.Equal(t, "a", snapshot.Table.Sales[0].ID)
	})

	t.Run("mudar o filtro reinicia a página", func(t *testing.T) {
		service.SetPage(2)
		assert.Equal(t, 2, service.Snapshot().Table.Page)

		service.SetWindow(Window{Days: 30})
		assert.Equal(t, 1, service.Snapshot().Table.Page)
	})

	t.Run("alternar a ordenação reinicia a página", func(t *testing.T) {
		service.SetPage(2)
		service.ToggleSort(SortByRevenue)

		snapshot := service.Snapshot()
		assert.Equal(t, 1, snapshot.Table.Page)
		assert.Equal(t, SortByRevenue, snapshot.Table.Field)
		assert.Equal(t, Ascending, snapshot.Table.Direction)
		assert.Equal(t, "a", snapshot.Table.Sales[0].ID)
	})
}
